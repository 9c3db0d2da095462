package csg

// Walk3 visits s and every Shape3 beneath it in depth-first order.
// Profiles of extrusion-like nodes are 2D and are not visited; use Walk2
// on them. Returning false from visit stops the walk early.
func Walk3(s Shape3, visit func(Shape3) bool) bool {
	if !visit(s) {
		return false
	}
	switch s := s.(type) {
	case SequentialHull:
		// no Shape3 children
	case Union:
		for _, c := range s.Shapes {
			if !Walk3(c, visit) {
				return false
			}
		}
	case Difference:
		return Walk3(s.Solid, visit) && Walk3(s.Cut, visit)
	case Intersection:
		return Walk3(s.A, visit) && Walk3(s.B, visit)
	case Translate:
		return Walk3(s.Shape, visit)
	case Rotate:
		return Walk3(s.Shape, visit)
	case Mirror:
		return Walk3(s.Shape, visit)
	}
	return true
}

// Walk2 visits s and every Shape2 beneath it in depth-first order.
// Returning false from visit stops the walk early.
func Walk2(s Shape2, visit func(Shape2) bool) bool {
	if !visit(s) {
		return false
	}
	switch s := s.(type) {
	case Offset:
		return Walk2(s.Shape, visit)
	case Translate2:
		return Walk2(s.Shape, visit)
	case Union2:
		for _, c := range s.Shapes {
			if !Walk2(c, visit) {
				return false
			}
		}
	case Difference2:
		return Walk2(s.Solid, visit) && Walk2(s.Cut, visit)
	case Intersection2:
		return Walk2(s.A, visit) && Walk2(s.B, visit)
	}
	return true
}
