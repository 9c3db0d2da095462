// Package csg describes printable solids as immutable constructive solid
// geometry expression trees. A tree is built bottom-up from primitive and
// combinator values and handed whole to an external signed distance field
// evaluator for tessellation and export; csg never meshes geometry itself.
package csg

// Axis names a coordinate axis. For Mirror and Reflect the axis is the
// normal of the mirror plane, i.e. AxisX mirrors across the X=0 plane.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "axis?"
}

// Shape2 is a node of a two dimensional outline expression tree.
// Implementations are the plain struct values declared in this package.
type Shape2 interface {
	shape2()
}

// Shape3 is a node of a solid expression tree. A Shape3 value is never
// modified after construction; combinators reference their operands by
// value so a tree is acyclic and finite by construction.
type Shape3 interface {
	shape3()
}
