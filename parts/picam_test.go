package parts

import (
	"math"
	"reflect"
	"testing"

	"github.com/dasaptaerwin/OpenMicrofluidics/csg"
)

func TestPushFitCutoutBeamHeight(t *testing.T) {
	for _, beam := range []float64{0.5, 1, 4.5, 6, 20, 150} {
		var cylinders []csg.Cylinder
		csg.Walk3(PushFitCutout(beam), func(s csg.Shape3) bool {
			if c, ok := s.(csg.Cylinder); ok {
				cylinders = append(cylinders, c)
			}
			return true
		})
		if len(cylinders) != 1 {
			t.Fatalf("beam=%g: found %d cylinders in cutout, want exactly 1", beam, len(cylinders))
		}
		if cylinders[0].Height != beam {
			t.Errorf("beam=%g: clearance cylinder height = %g", beam, cylinders[0].Height)
		}
	}
}

func TestScrewVoidsMirrored(t *testing.T) {
	var pairs []csg.Union
	csg.Walk3(PushFitCutout(6), func(s csg.Shape3) bool {
		u, ok := s.(csg.Union)
		if !ok || len(u.Shapes) != 2 {
			return true
		}
		want := csg.Shape3(csg.Mirror{Shape: u.Shapes[0], Axis: csg.AxisX})
		if reflect.DeepEqual(u.Shapes[1], want) {
			pairs = append(pairs, u)
		}
		return true
	})
	if len(pairs) != 1 {
		t.Fatalf("found %d mirrored pairs across X=0, want exactly 1 (the screw voids)", len(pairs))
	}
	// The mirrored operand must be the screw void, placed off-center.
	tr, ok := pairs[0].Shapes[0].(csg.Translate)
	if !ok {
		t.Fatalf("mirrored operand is %T, want Translate", pairs[0].Shapes[0])
	}
	if tr.Offset.X != screwCenter {
		t.Errorf("screw void at x=%g, want %g", tr.Offset.X, screwCenter)
	}
}

func TestFunnelTapers(t *testing.T) {
	var funnel *csg.SequentialHull
	csg.Walk3(PushFitCutout(6), func(s csg.Shape3) bool {
		if h, ok := s.(csg.SequentialHull); ok && len(h.Sections) == 4 {
			funnel = &h
			return false
		}
		return true
	})
	if funnel == nil {
		t.Fatal("no four-section hull (the tapered aperture) in cutout")
	}
	prevZ := math.Inf(-1)
	prevSize := math.Inf(1)
	for i, sec := range funnel.Sections {
		if sec.Z <= prevZ {
			t.Errorf("section %d at z=%g not above previous (%g)", i, sec.Z, prevZ)
		}
		size := footprint(t, sec.Profile)
		if size > prevSize {
			t.Errorf("funnel widens at section %d: %g after %g", i, size, prevSize)
		}
		prevZ, prevSize = sec.Z, size
	}
	if funnel.Sections[0].Z != 0 {
		t.Errorf("funnel base at z=%g, want 0", funnel.Sections[0].Z)
	}
	if got := funnel.Sections[len(funnel.Sections)-1].Z; got != MountHeight {
		t.Errorf("funnel top at z=%g, want %g", got, MountHeight)
	}
}

// footprint is the linear size of a cross-section profile.
func footprint(t *testing.T, s csg.Shape2) float64 {
	t.Helper()
	switch s := s.(type) {
	case csg.Rect:
		return math.Max(s.Size.X, s.Size.Y)
	case csg.Circle:
		return 2 * s.Radius
	}
	t.Fatalf("unexpected profile %T in funnel", s)
	return 0
}

func TestCutoutDeterministic(t *testing.T) {
	if !reflect.DeepEqual(PushFitCutout(6), PushFitCutout(6)) {
		t.Error("identical parameters produced structurally different trees")
	}
	a := Cutout(CutoutParams{BeamLength: 3, Fit: 0.7, LegacyLED: true})
	b := Cutout(CutoutParams{BeamLength: 3, Fit: 0.7, LegacyLED: true})
	if !reflect.DeepEqual(a, b) {
		t.Error("identical CutoutParams produced structurally different trees")
	}
	if reflect.DeepEqual(PushFitCutout(3), PushFitCutout(4)) {
		t.Error("different beam lengths produced identical trees")
	}
}

func TestBoardProfileBounds(t *testing.T) {
	dims := []struct{ w, b float64 }{
		{BoardLength, BoardBreadth},
		{10, 30},
		{24.5, 23.5},
	}
	for _, d := range dims {
		max := math.Min(d.w, d.b) / 2
		for _, roc := range []float64{0, 0.5, 2, 0.99 * max} {
			s, err := csg.SDF2(BoardProfile(d.w, d.b, roc))
			if err != nil {
				t.Fatalf("w=%g b=%g roc=%g: %v", d.w, d.b, roc, err)
			}
			bb := s.Bounds()
			gotW := bb.Max.X - bb.Min.X
			gotB := bb.Max.Y - bb.Min.Y
			if math.Abs(gotW-d.w) > 1e-12 || math.Abs(gotB-d.b) > 1e-12 {
				t.Errorf("w=%g b=%g roc=%g: bounding box %gx%g", d.w, d.b, roc, gotW, gotB)
			}
		}
	}
}

func TestScrewVoidsInsideBoardEdge(t *testing.T) {
	// Lateral reach of a screw void including the widened entry chamfer.
	reach := screwCenter + screwRadius + screwChamfer
	// Worst case board over the manufacturing tolerance band.
	halfWidth := (BoardLength - BoardTolerance) / 2
	if reach > halfWidth-ScrewEdgeMargin {
		t.Errorf("screw voids reach %gmm, exceeding the %gmm margin on a %gmm half-board",
			reach, ScrewEdgeMargin, halfWidth)
	}
}

func TestGripperFingerCount(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		got := 0
		csg.Walk3(Gripper(GripperParams{Fingers: n}), func(s csg.Shape3) bool {
			if _, ok := s.(csg.Rotate); ok {
				got++
			}
			return true
		})
		if got != n {
			t.Errorf("Fingers=%d: %d finger placements in tree", n, got)
		}
	}
}

func TestSelfTapVoidStructure(t *testing.T) {
	v := SelfTapVoid(SelfTapParams{Radius: 1.1, Lobe: 0.45, BoreDepth: 3.5, Chamfer: 1})
	u, ok := v.(csg.Union)
	if !ok || len(u.Shapes) != 2 {
		t.Fatalf("self-tap void is %T, want a two-part union", v)
	}
	bore, ok := u.Shapes[0].(csg.Extrude)
	if !ok {
		t.Fatalf("bore is %T, want Extrude", u.Shapes[0])
	}
	if bore.Height != 3.5 {
		t.Errorf("bore depth = %g, want 3.5", bore.Height)
	}
	chamfer, ok := u.Shapes[1].(csg.SequentialHull)
	if !ok {
		t.Fatalf("chamfer is %T, want SequentialHull", u.Shapes[1])
	}
	if len(chamfer.Sections) != 2 {
		t.Fatalf("chamfer has %d sections, want 2", len(chamfer.Sections))
	}
	if chamfer.Sections[0].Z != bore.Height {
		t.Errorf("chamfer starts at z=%g, want on top of bore at %g", chamfer.Sections[0].Z, bore.Height)
	}
	if !reflect.DeepEqual(chamfer.Sections[0].Profile, bore.Profile) {
		t.Error("chamfer base profile does not match the bore profile")
	}
}

func TestMountIsBlockMinusCutout(t *testing.T) {
	m := Mount(MountParams{})
	d, ok := m.(csg.Difference)
	if !ok {
		t.Fatalf("mount is %T, want Difference", m)
	}
	if _, ok := d.Solid.(csg.Extrude); !ok {
		t.Errorf("mount solid is %T, want extruded block", d.Solid)
	}
	want := Cutout(CutoutParams{BeamLength: 6})
	if !reflect.DeepEqual(d.Cut, want) {
		t.Error("mount cut is not the default push-fit cutout")
	}
}
