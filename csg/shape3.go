package csg

import "gonum.org/v1/gonum/spatial/r3"

// Box is a cuboid of Size centered at the origin. Round > 0 rounds edges
// and corners without changing the overall extent.
type Box struct {
	Size  r3.Vec
	Round float64
}

// Cylinder is a circular cylinder centered at the origin with its axis
// along Z. Round > 0 rounds the end edges.
type Cylinder struct {
	Height, Radius float64
	Round          float64
}

// Cone is a truncated cone centered at the origin with its axis along Z,
// radius Base at the bottom and Top at the top.
type Cone struct {
	Height, Base, Top float64
	Round             float64
}

// Extrude sweeps Profile linearly from z=0 up to z=Height.
type Extrude struct {
	Profile Shape2
	Height  float64
}

// Revolve rotates Profile around the Z axis by Theta radians.
// Use 2*pi for a full solid of revolution.
type Revolve struct {
	Profile Shape2
	Theta   float64
}

// Loft blends linearly from the Lower profile at z=0 to the Upper
// profile at z=Height. Profiles share the XY frame of their tree.
type Loft struct {
	Lower, Upper Shape2
	Height       float64
}

// Section is one cross-section of a SequentialHull, the outline Profile
// placed at height Z.
type Section struct {
	Profile Shape2
	Z       float64
}

// SequentialHull lofts pairwise between consecutive cross-sections of an
// ordered list, producing a continuous taper through all of them.
// Sections must be ordered by strictly increasing Z.
type SequentialHull struct {
	Sections []Section
}

// Union is the boolean union of solids. CSG union is commutative and
// associative, so operand order never changes the resulting solid.
type Union struct {
	Shapes []Shape3
}

// Difference removes Cut from Solid.
type Difference struct {
	Solid, Cut Shape3
}

// Intersection is the boolean intersection of two solids.
type Intersection struct {
	A, B Shape3
}

// Translate moves a solid by Offset.
type Translate struct {
	Shape  Shape3
	Offset r3.Vec
}

// Rotate rotates a solid by Angle radians around the given axis
// through the origin.
type Rotate struct {
	Shape Shape3
	Axis  Axis
	Angle float64
}

// Mirror reflects a solid across the plane through the origin whose
// normal is Axis.
type Mirror struct {
	Shape Shape3
	Axis  Axis
}

func (Box) shape3()            {}
func (Cylinder) shape3()       {}
func (Cone) shape3()           {}
func (Extrude) shape3()        {}
func (Revolve) shape3()        {}
func (Loft) shape3()           {}
func (SequentialHull) shape3() {}
func (Union) shape3()          {}
func (Difference) shape3()     {}
func (Intersection) shape3()   {}
func (Translate) shape3()      {}
func (Rotate) shape3()         {}
func (Mirror) shape3()         {}

// Reflect mirrors s across the plane normal to axis and unions the image
// with the original, producing bilateral symmetry.
func Reflect(axis Axis, s Shape3) Shape3 {
	return Union{Shapes: []Shape3{s, Mirror{Shape: s, Axis: axis}}}
}
