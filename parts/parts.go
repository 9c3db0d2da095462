// Package parts generates the printable mechanical parts of the
// OpenMicrofluidics imaging rig as csg trees: the Raspberry Pi camera
// platform with its push-fit socket, the matching back cover, the lens
// gripper and the lens seating tool.
//
// Every generator is a pure function from dimensional parameters to a
// shape tree. Dimensions are millimeters. Several constants encode
// empirically tuned print tolerances; they are calibration, not derived
// values, and should not be recomputed.
package parts

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/dasaptaerwin/OpenMicrofluidics/csg"
)

const sqrt3d2 = 0.8660254037844386 // sin(60°)

// triangle returns an equilateral triangle of circumradius r with one
// vertex on +Y, wound counter-clockwise.
func triangle(r float64) csg.Polygon {
	return csg.Polygon{Vertices: []r2.Vec{
		{X: 0, Y: r},
		{X: -sqrt3d2 * r, Y: -0.5 * r},
		{X: sqrt3d2 * r, Y: -0.5 * r},
	}}
}
