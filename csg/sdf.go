package csg

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lowering of csg trees onto the external SDF evaluator. The evaluator
// owns all geometric validation: degenerate dimensions (zero extents,
// negative heights) panic inside its constructors and are converted to
// errors here, never checked during tree construction.

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// SDF3 lowers a solid tree to the evaluator's signed distance field
// representation, ready for tessellation and STL export.
func SDF3(s Shape3) (lowered sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return lower3(s), err
}

// SDF2 lowers an outline tree to the evaluator's 2D representation.
func SDF2(s Shape2) (lowered sdf.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return lower2(s), err
}

func lower3(s Shape3) sdf.SDF3 {
	switch s := s.(type) {
	case Box:
		return must3.Box(s.Size, s.Round)
	case Cylinder:
		return must3.Cylinder(s.Height, s.Radius, s.Round)
	case Cone:
		return must3.Cone(s.Height, s.Base, s.Top, s.Round)
	case Extrude:
		e := sdf.Extrude3D(lower2(s.Profile), s.Height)
		// Extrusions are built base-at-zero; the evaluator centers them.
		return sdf.Transform3D(e, sdf.Translate3D(r3.Vec{Z: 0.5 * s.Height}))
	case Revolve:
		return sdf.Revolve3D(lower2(s.Profile), s.Theta)
	case Loft:
		return loftSegment(s.Lower, s.Upper, 0, s.Height)
	case SequentialHull:
		if len(s.Sections) < 2 {
			panic("sequential hull needs at least 2 cross-sections")
		}
		segments := make([]sdf.SDF3, 0, len(s.Sections)-1)
		for i := 0; i+1 < len(s.Sections); i++ {
			lo, hi := s.Sections[i], s.Sections[i+1]
			if hi.Z <= lo.Z {
				panic("sequential hull cross-sections must have increasing Z")
			}
			segments = append(segments, loftSegment(lo.Profile, hi.Profile, lo.Z, hi.Z))
		}
		if len(segments) == 1 {
			return segments[0]
		}
		return sdf.Union3D(segments...)
	case Union:
		switch len(s.Shapes) {
		case 0:
			panic("empty union")
		case 1:
			return lower3(s.Shapes[0])
		}
		operands := make([]sdf.SDF3, len(s.Shapes))
		for i, c := range s.Shapes {
			operands[i] = lower3(c)
		}
		return sdf.Union3D(operands...)
	case Difference:
		return sdf.Difference3D(lower3(s.Solid), lower3(s.Cut))
	case Intersection:
		return sdf.Intersect3D(lower3(s.A), lower3(s.B))
	case Translate:
		return sdf.Transform3D(lower3(s.Shape), sdf.Translate3D(s.Offset))
	case Rotate:
		l := lower3(s.Shape)
		// The evaluator's matrix type is unexported, hence no rotation
		// matrix helper here.
		switch s.Axis {
		case AxisX:
			return sdf.Transform3D(l, sdf.RotateX(s.Angle))
		case AxisY:
			return sdf.Transform3D(l, sdf.RotateY(s.Angle))
		case AxisZ:
			return sdf.Transform3D(l, sdf.RotateZ(s.Angle))
		}
		panic("unknown axis")
	case Mirror:
		return sdf.Transform3D(lower3(s.Shape), sdf.Scale3D(mirrorScale(s.Axis)))
	case nil:
		panic("nil Shape3")
	}
	panic(fmt.Sprintf("unknown Shape3 %T", s))
}

func lower2(s Shape2) sdf.SDF2 {
	switch s := s.(type) {
	case Rect:
		return must2.Box(s.Size, s.Round)
	case Circle:
		return must2.Circle(s.Radius)
	case Polygon:
		return must2.Polygon(s.Vertices)
	case Offset:
		return sdf.Offset2D(lower2(s.Shape), s.Distance)
	case Translate2:
		return sdf.Transform2D(lower2(s.Shape), sdf.Translate2D(s.Offset))
	case Union2:
		switch len(s.Shapes) {
		case 0:
			panic("empty union")
		case 1:
			return lower2(s.Shapes[0])
		}
		operands := make([]sdf.SDF2, len(s.Shapes))
		for i, c := range s.Shapes {
			operands[i] = lower2(c)
		}
		return sdf.Union2D(operands...)
	case Difference2:
		return sdf.Difference2D(lower2(s.Solid), lower2(s.Cut))
	case Intersection2:
		return sdf.Intersect2D(lower2(s.A), lower2(s.B))
	case nil:
		panic("nil Shape2")
	}
	panic(fmt.Sprintf("unknown Shape2 %T", s))
}

// loftSegment lowers the blend between two cross-sections spanning
// heights z0 to z1. Lofting linearly mixes the two distance fields,
// which for the concentric convex profiles used here is the pairwise
// hull of the placed cross-sections.
func loftSegment(lower, upper Shape2, z0, z1 float64) sdf.SDF3 {
	h := z1 - z0
	l := sdf.Loft3D(lower2(lower), lower2(upper), h, 0)
	return sdf.Transform3D(l, sdf.Translate3D(r3.Vec{Z: z0 + 0.5*h}))
}

// mirrorScale builds the anisotropic scale vector that reflects across
// the plane normal to axis. The transform preserves volume so evaluator
// distances stay exact.
func mirrorScale(axis Axis) r3.Vec {
	v := r3.Vec{X: 1, Y: 1, Z: 1}
	switch axis {
	case AxisX:
		v.X = -1
	case AxisY:
		v.Y = -1
	case AxisZ:
		v.Z = -1
	default:
		panic("unknown axis")
	}
	return v
}
