package parts

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dasaptaerwin/OpenMicrofluidics/csg"
)

// CoverParams describes the back cover that clips over the component
// side of the camera board. Zero values select the calibrated defaults.
type CoverParams struct {
	Wall  float64 // perimeter wall thickness
	Plate float64 // back plate thickness
	Depth float64 // pocket depth over the board
	// Fit is the allowance added around the board pocket.
	Fit float64
}

const (
	coverWall  = 1.6
	coverPlate = 1.2
	coverDepth = 4.0
	coverFit   = 0.5

	// Flex exit slot in the cover wall.
	coverSlotWidth = flexWidth + 1.0
)

// Cover returns the board back cover, plate down with its base at z=0.
// The flex cable exits through a slot in the +Y wall.
func Cover(k CoverParams) csg.Shape3 {
	wall := defaulted(k.Wall, coverWall)
	plate := defaulted(k.Plate, coverPlate)
	depth := defaulted(k.Depth, coverDepth)
	fit := defaulted(k.Fit, coverFit)

	outer := csg.Extrude{
		Profile: csg.Rect{
			Size:  r2.Vec{X: BoardLength + 2*wall, Y: BoardBreadth + 2*wall},
			Round: BoardCorner + wall,
		},
		Height: plate + depth,
	}
	pocket := csg.Translate{
		Shape: csg.Extrude{
			Profile: csg.Rect{
				Size:  r2.Vec{X: BoardLength + fit, Y: BoardBreadth + fit},
				Round: BoardCorner,
			},
			Height: depth,
		},
		Offset: r3.Vec{Z: plate},
	}
	slot := csg.Translate{
		Shape: csg.Box{
			Size: r3.Vec{X: coverSlotWidth, Y: 4 * wall, Z: depth},
		},
		Offset: r3.Vec{Y: 0.5 * BoardBreadth, Z: plate + 0.5*depth},
	}
	return csg.Difference{
		Solid: csg.Difference{Solid: outer, Cut: pocket},
		Cut:   slot,
	}
}

func defaulted(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
