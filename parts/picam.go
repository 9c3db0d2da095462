package parts

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dasaptaerwin/OpenMicrofluidics/csg"
)

// Raspberry Pi camera v2 module and its platform. The board mounts
// under the platform; the camera housing push-fits into the socket from
// below and two self-tapping screws hold the board.
const (
	// Board dimensions, from the module mechanical drawing.
	BoardLength    = 25.0 // along X
	BoardBreadth   = 24.0 // along Y
	BoardThickness = 1.0
	BoardCorner    = 2.0
	// BoardTolerance is the manufacturing band on board dimensions.
	BoardTolerance = 0.5

	// Camera housing: square plastic box around the sensor.
	camSquare        = 9.0 // housing footprint, side of square
	camFit           = 0.5 // push-fit allowance on the socket
	camLedgeOversize = 0.5 // extra width of the entry lip
	camLedgeHeight   = 0.5
	camHousingHeight = 2.5

	// MountHeight is the platform thickness and the full height of the
	// push-fit cutout.
	MountHeight    = 4.5
	apertureRadius = 2.8
	beamRadius     = 2.3

	// Flex cable and connector footprint on the component side.
	flexWidth     = 11.0
	flexDepth     = 5.2
	flexCorner    = 0.6
	flexOffsetY   = 0.5*camSquare + 0.5*flexDepth + 0.3
	flexClearance = 1.0
	flexRoofInset = 1.5 // inward offset of the sloped ceiling
	flexRoofRise  = 1.5 // 45 degrees, printable without support

	// Legacy LED footprint of the v1 board, kept for backward
	// compatibility with older camera revisions.
	ledWidth     = 4.0
	ledDepth     = 3.0
	ledOffsetY   = -7.0
	ledClearance = 0.6
	ledRoofInset = 1.2
	ledRoofRise  = 1.2

	// Mounting screws, mirrored pair across the X=0 plane.
	screwCenter  = 6.25 // half the 12.5mm hole spacing
	screwRadius  = 1.1  // self-tap bore lateral radius
	screwLobe    = 0.45
	screwChamfer = 1.0
	// ScrewEdgeMargin is the minimum lateral distance kept between a
	// screw void and the outer board edge over the full board
	// tolerance band.
	ScrewEdgeMargin = 0.5
)

// CutoutParams tunes the camera push-fit cutout. Zero values select the
// calibrated defaults.
type CutoutParams struct {
	// BeamLength is the length of the cylindrical optical-path
	// clearance above the aperture.
	BeamLength float64
	// Fit is the push-fit allowance added to the housing socket.
	Fit float64
	// LegacyLED adds clearance for the v1 board LED footprint.
	LegacyLED bool
}

// PushFitCutout returns the negative space that press-fits a camera
// module into a solid block: subtract it from the platform. beamLength
// is the length of the optical-path clearance above the aperture.
func PushFitCutout(beamLength float64) csg.Shape3 {
	return Cutout(CutoutParams{BeamLength: beamLength, LegacyLED: true})
}

// Cutout is PushFitCutout with every tunable exposed. The base of the
// cutout (camera insertion side) is at z=0 and the aperture opens at
// z=MountHeight.
func Cutout(p CutoutParams) csg.Shape3 {
	fit := p.Fit
	if fit == 0 {
		fit = camFit
	}
	socket := camSquare + fit

	// Tapered aperture: wide entry lip, then the true socket up the
	// housing, then a funnel to the circular aperture. Inserting the
	// camera finds its own alignment on the way in.
	funnel := csg.SequentialHull{Sections: []csg.Section{
		{Profile: square(socket + camLedgeOversize), Z: 0},
		{Profile: square(socket), Z: camLedgeHeight},
		{Profile: square(socket), Z: camHousingHeight},
		{Profile: csg.Circle{Radius: apertureRadius}, Z: MountHeight},
	}}

	// Flex cable and connector clearance with a sloped ceiling.
	flex := slopedClearance(
		csg.Translate2{
			Shape:  csg.Rect{Size: r2.Vec{X: flexWidth, Y: flexDepth}, Round: flexCorner},
			Offset: r2.Vec{Y: flexOffsetY},
		},
		flexClearance, flexRoofInset, flexRoofRise,
	)

	beam := csg.Translate{
		Shape:  csg.Cylinder{Height: p.BeamLength, Radius: beamRadius},
		Offset: r3.Vec{Z: MountHeight + 0.5*p.BeamLength},
	}

	void := SelfTapVoid(SelfTapParams{
		Radius:    screwRadius,
		Lobe:      screwLobe,
		BoreDepth: MountHeight - screwChamfer,
		Chamfer:   screwChamfer,
	})
	screws := csg.Reflect(csg.AxisX, csg.Translate{
		Shape:  void,
		Offset: r3.Vec{X: screwCenter},
	})

	cut := []csg.Shape3{funnel, flex}
	if p.LegacyLED {
		cut = append(cut, slopedClearance(
			csg.Translate2{
				Shape:  csg.Rect{Size: r2.Vec{X: ledWidth, Y: ledDepth}, Round: 0.4},
				Offset: r2.Vec{Y: ledOffsetY},
			},
			ledClearance, ledRoofInset, ledRoofRise,
		))
	}
	cut = append(cut, beam, screws)
	return csg.Union{Shapes: cut}
}

// slopedClearance clears an outline up to height clear, then tapers the
// ceiling to the outline's inward offset by inset over a further rise.
// The slope keeps the roof printable without internal supports.
func slopedClearance(outline csg.Shape2, clear, inset, rise float64) csg.Shape3 {
	return csg.SequentialHull{Sections: []csg.Section{
		{Profile: outline, Z: 0},
		{Profile: outline, Z: clear},
		{Profile: csg.Offset{Shape: outline, Distance: -inset}, Z: clear + rise},
	}}
}

func square(side float64) csg.Rect {
	return csg.Rect{Size: r2.Vec{X: side, Y: side}}
}

// BoardProfile returns the closed board outline, a w by b rectangle
// with corner radius roc. The bounding box is exactly w by b for any
// roc in [0, min(w,b)/2).
func BoardProfile(w, b, roc float64) csg.Shape2 {
	return csg.Rect{Size: r2.Vec{X: w, Y: b}, Round: roc}
}

// BoardParams describes a camera PCB blank.
type BoardParams struct {
	Size         r2.Vec
	Thickness    float64
	CornerRadius float64
}

// CameraBoard is the Raspberry Pi camera v2 PCB.
var CameraBoard = BoardParams{
	Size:         r2.Vec{X: BoardLength, Y: BoardBreadth},
	Thickness:    BoardThickness,
	CornerRadius: BoardCorner,
}

// Board returns the PCB blank as a solid, base at z=0. Used for fit
// checking covers and pockets against the real board envelope.
func Board(k BoardParams) csg.Shape3 {
	return csg.Extrude{
		Profile: BoardProfile(k.Size.X, k.Size.Y, k.CornerRadius),
		Height:  k.Thickness,
	}
}

// MountParams describes the camera platform.
type MountParams struct {
	Cutout CutoutParams
	// Height is the platform thickness. Zero selects MountHeight.
	Height float64
	// Footprint is the platform outline size. Zero selects the board
	// footprint.
	Footprint    r2.Vec
	CornerRadius float64
}

// Mount returns the camera platform: a solid block with the push-fit
// cutout subtracted. The platform base (camera side) is at z=0.
func Mount(k MountParams) csg.Shape3 {
	h := k.Height
	if h == 0 {
		h = MountHeight
	}
	fp := k.Footprint
	if fp == (r2.Vec{}) {
		fp = r2.Vec{X: BoardLength, Y: BoardBreadth}
	}
	roc := k.CornerRadius
	if roc == 0 {
		roc = BoardCorner
	}
	cut := k.Cutout
	if cut.BeamLength == 0 {
		// Default beam clears the standard optics module standoff.
		cut.BeamLength = 6
	}
	block := csg.Extrude{
		Profile: csg.Rect{Size: fp, Round: roc},
		Height:  h,
	}
	return csg.Difference{Solid: block, Cut: Cutout(cut)}
}
