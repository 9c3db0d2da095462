package parts

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dasaptaerwin/OpenMicrofluidics/csg"
)

// GripperParams describes the flexible lens gripper: a thin revolved
// collar with inward fingers that snap around the lens barrel.
type GripperParams struct {
	// LensRadius is the barrel radius the fingers close around.
	LensRadius float64
	Height     float64
	Fingers    int
}

// Finger and collar dimensions are tuned for PLA flexure; they encode
// print calibration, not derivable geometry.
const (
	gripperWall         = 1.0
	gripperFingerWidth  = 1.6
	gripperFingerReach  = 1.2 // how far a finger overhangs the barrel
	gripperFingerHeight = 1.0
)

// Gripper returns the lens gripper, collar base at z=0.
func Gripper(k GripperParams) csg.Shape3 {
	n := k.Fingers
	if n == 0 {
		n = 3
	}
	h := defaulted(k.Height, 3.0)
	r := defaulted(k.LensRadius, 4.0)

	collar := csg.Revolve{
		Profile: csg.Translate2{
			Shape:  csg.Rect{Size: r2.Vec{X: gripperWall, Y: h}},
			Offset: r2.Vec{X: r + 0.5*gripperWall, Y: 0.5 * h},
		},
		Theta: 2 * math.Pi,
	}

	finger := csg.Translate{
		Shape: csg.Box{
			Size:  r3.Vec{X: gripperWall + gripperFingerReach, Y: gripperFingerWidth, Z: gripperFingerHeight},
			Round: 0.3,
		},
		Offset: r3.Vec{
			X: r + 0.5*(gripperWall-gripperFingerReach),
			Z: h - 0.5*gripperFingerHeight,
		},
	}
	shapes := []csg.Shape3{collar}
	for i := 0; i < n; i++ {
		shapes = append(shapes, csg.Rotate{
			Shape: finger,
			Axis:  csg.AxisZ,
			Angle: 2 * math.Pi * float64(i) / float64(n),
		})
	}
	return csg.Union{Shapes: shapes}
}
