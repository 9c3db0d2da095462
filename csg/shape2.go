package csg

import "gonum.org/v1/gonum/spatial/r2"

// Rect is a rectangle of Size centered at the origin. Round > 0 rounds
// the corners, equivalent to hulling four corner circles of that radius.
// The overall footprint stays exactly Size regardless of Round.
type Rect struct {
	Size  r2.Vec
	Round float64
}

// Circle is a circle of Radius centered at the origin.
type Circle struct {
	Radius float64
}

// Polygon is a closed outline through Vertices in order.
type Polygon struct {
	Vertices []r2.Vec
}

// Offset grows (Distance > 0) or shrinks (Distance < 0) an outline.
// Growing rounds convex corners, as if sweeping a circle along the edge.
type Offset struct {
	Shape    Shape2
	Distance float64
}

// Translate2 moves an outline by Offset.
type Translate2 struct {
	Shape  Shape2
	Offset r2.Vec
}

// Union2 is the boolean union of outlines.
type Union2 struct {
	Shapes []Shape2
}

// Difference2 removes Cut from Solid.
type Difference2 struct {
	Solid, Cut Shape2
}

// Intersection2 is the boolean intersection of two outlines.
type Intersection2 struct {
	A, B Shape2
}

func (Rect) shape2()          {}
func (Circle) shape2()        {}
func (Polygon) shape2()       {}
func (Offset) shape2()        {}
func (Translate2) shape2()    {}
func (Union2) shape2()        {}
func (Difference2) shape2()   {}
func (Intersection2) shape2() {}
