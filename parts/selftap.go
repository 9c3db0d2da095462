package parts

import "github.com/dasaptaerwin/OpenMicrofluidics/csg"

// SelfTapParams defines a self-tapping screw void: a straight bore of
// triangular cross-section with a matching frustum chamfer on top. The
// triangular profile gives the screw three flats to tap into instead of
// letting it spin in a round hole.
type SelfTapParams struct {
	// Radius is the lateral radius of the bore, measured across the
	// rounded lobes of the triangular profile.
	Radius float64
	// Lobe is the circumradius of the triangle joining the lobe
	// centers. Larger values flatten the profile toward a plain
	// triangle, smaller values round it toward a circle.
	Lobe float64
	// BoreDepth is the height of the straight bore.
	BoreDepth float64
	// Chamfer is the depth of the entry chamfer; the entry widens by
	// the same amount for a 45 degree lead-in.
	Chamfer float64
}

// SelfTapVoid returns the negative space for a self-tapping screw, base
// of the bore at z=0 and the chamfered entry opening upward.
func SelfTapVoid(k SelfTapParams) csg.Shape3 {
	tri := triangle(k.Lobe)
	bore := csg.Offset{Shape: tri, Distance: k.Radius - k.Lobe}
	entry := csg.Offset{Shape: tri, Distance: k.Radius - k.Lobe + k.Chamfer}
	return csg.Union{Shapes: []csg.Shape3{
		csg.Extrude{Profile: bore, Height: k.BoreDepth},
		csg.SequentialHull{Sections: []csg.Section{
			{Profile: bore, Z: k.BoreDepth},
			{Profile: entry, Z: k.BoreDepth + k.Chamfer},
		}},
	}}
}
