// Package matter captures 3D printing material behavior so printed
// microscope parts come off the bed at the dimensions the geometry asks
// for. Internal voids shrink as extruded plastic cools and pulls inward,
// so push-fit sockets and screw bores are compensated before rendering.
package matter

import "github.com/soypat/sdf"

var (
	// PLA (polylactic acid) is the default filament for rig parts.
	PLA = FusedFilament{shrink: 0.2e-2, pullShrink: 0.45}
	// PETG runs hotter and contracts more than PLA.
	PETG = FusedFilament{shrink: 0.4e-2, pullShrink: 0.55}
)

// FusedFilament models a material deposited by fused filament
// fabrication.
type FusedFilament struct {
	// shrink is the thermal contraction of the material once it cools
	// to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink accounts for viscoelastic pull on internal contours,
	// in millimeters.
	pullShrink float64
}

// Scale compensates a finished solid for thermal contraction. Apply once,
// right before rendering.
func (m FusedFilament) Scale(s sdf.SDF3) sdf.SDF3 {
	return sdf.ScaleUniform3D(s, 1/(1-m.shrink))
}

// InternalDimScale returns the as-modeled size for an internal dimension
// that must measure real millimeters after printing.
func (m FusedFilament) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for positive dimensions")
	}
	return real*(1+m.shrink) + m.pullShrink
}
