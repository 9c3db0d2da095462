package parts

import "github.com/dasaptaerwin/OpenMicrofluidics/csg"

// LensToolParams describes the lens seating tool: a handle disc with a
// tapered stem ending in a tip that bears on the lens barrel without
// touching the glass.
type LensToolParams struct {
	TipRadius    float64
	HandleRadius float64
	StemLength   float64
}

const (
	toolHandleHeight = 8.0
	toolTipHeight    = 2.0
)

// LensTool returns the seating tool standing on its handle, tip up.
func LensTool(k LensToolParams) csg.Shape3 {
	tip := defaulted(k.TipRadius, 2.0)
	handle := defaulted(k.HandleRadius, 8.0)
	stem := defaulted(k.StemLength, 12.0)

	return csg.Union{Shapes: []csg.Shape3{
		csg.Extrude{
			Profile: csg.Circle{Radius: handle},
			Height:  toolHandleHeight,
		},
		csg.SequentialHull{Sections: []csg.Section{
			{Profile: csg.Circle{Radius: handle}, Z: toolHandleHeight},
			{Profile: csg.Circle{Radius: tip}, Z: toolHandleHeight + stem},
			{Profile: csg.Circle{Radius: tip}, Z: toolHandleHeight + stem + toolTipHeight},
		}},
	}}
}
