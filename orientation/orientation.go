package orientation

import "github.com/hugcis/geos/robust"

// The sign of the cross product is delegated to an extended-precision
// evaluator, because naive double subtraction and multiplication can round
// a near-zero determinant onto the wrong side of zero. The evaluator is a
// pluggable capability; the default filters with doubles and falls back to
// double-double arithmetic only for ambiguous cases.
var defaultEvaluator robust.Evaluator = robust.DDEvaluator{}

// Index returns the orientation of the turn p1 -> p2 -> q. The result is
// CounterClockwise if q is left of the directed line p1 -> p2, Clockwise if
// it is right of it, and Collinear only when the three points are exactly
// collinear. Index is exactly antisymmetric in its first two arguments.
func Index(p1, p2, q *Point) Orientation {
	return IndexWith(defaultEvaluator, p1, p2, q)
}

// IndexWith is Index with an explicit sign evaluator.
func IndexWith(ev robust.Evaluator, p1, p2, q *Point) Orientation {
	return Orientation(ev.CrossProductSign(p1.X, p1.Y, p2.X, p2.Y, q.X, q.Y))
}
