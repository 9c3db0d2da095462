package parts

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dasaptaerwin/OpenMicrofluidics/csg"
)

// PostParams describes a board mounting post: a cylindrical pillar with
// a self-tapping screw bore entering from the top and optional
// triangular gusset webs around the base.
type PostParams struct {
	Height   float64
	Diameter float64
	// BoreDepth is the depth of the screw bore from the post top. Zero
	// leaves the post solid.
	BoreDepth float64
	// Webs is the number of gussets around the base. Webs taller than
	// the pillar are clipped at the pillar top.
	Webs      int
	WebHeight float64
	WebReach  float64 // radial extent of a web from the pillar axis
	WebWidth  float64
}

// Post returns a single mounting post, base at z=0.
func Post(k PostParams) csg.Shape3 {
	pillar := csg.Extrude{
		Profile: csg.Circle{Radius: 0.5 * k.Diameter},
		Height:  k.Height,
	}
	solid := csg.Shape3(pillar)
	if k.Webs > 0 {
		solid = csg.Intersection{
			A: csg.Union{Shapes: append([]csg.Shape3{pillar}, webs(k)...)},
			B: csg.Translate{
				Shape:  csg.Cylinder{Height: k.Height, Radius: k.WebReach + k.Diameter},
				Offset: r3.Vec{Z: 0.5 * k.Height},
			},
		}
	}
	if k.BoreDepth == 0 {
		return solid
	}
	void := SelfTapVoid(SelfTapParams{
		Radius:    screwRadius,
		Lobe:      screwLobe,
		BoreDepth: k.BoreDepth - screwChamfer,
		Chamfer:   screwChamfer,
	})
	// Chamfered entry flush with the post top.
	return csg.Difference{
		Solid: solid,
		Cut:   csg.Translate{Shape: void, Offset: r3.Vec{Z: k.Height - k.BoreDepth}},
	}
}

// MountingPosts returns the mirrored pair of posts matching the camera
// board screw holes, mirror images across the X=0 plane.
func MountingPosts(k PostParams) csg.Shape3 {
	return csg.Reflect(csg.AxisX, csg.Translate{
		Shape:  Post(k),
		Offset: r3.Vec{X: screwCenter},
	})
}

// webs returns the gussets, a right-triangle profile stood upright and
// repeated around the pillar axis.
func webs(k PostParams) []csg.Shape3 {
	profile := csg.Polygon{Vertices: []r2.Vec{
		{X: 0, Y: 0},
		{X: k.WebReach, Y: 0},
		{X: 0, Y: k.WebHeight},
	}}
	// Stand the extruded profile up in a vertical plane, centered on
	// the web width.
	web := csg.Translate{
		Shape: csg.Rotate{
			Shape: csg.Extrude{Profile: profile, Height: k.WebWidth},
			Axis:  csg.AxisX,
			Angle: 0.5 * math.Pi,
		},
		Offset: r3.Vec{Y: 0.5 * k.WebWidth},
	}
	out := make([]csg.Shape3, k.Webs)
	for i := range out {
		out[i] = csg.Rotate{
			Shape: web,
			Axis:  csg.AxisZ,
			Angle: 2 * math.Pi * float64(i) / float64(k.Webs),
		}
	}
	return out
}
