// Robust planar orientation predicates for Go.
//
// This package determines the turn made by an ordered triple of points and
// the winding direction of a closed polygonal ring. Both predicates are
// robust: the sign of the underlying cross product is resolved with
// extended-precision arithmetic, so nearly collinear points and
// large-magnitude coordinates cannot flip the result the way a naive
// floating-point computation can.
package geos

import "github.com/hugcis/geos/orientation"

type Point = orientation.Point
type Ring = orientation.Ring
type Orientation = orientation.Orientation

const (
	Clockwise        = orientation.Clockwise
	Collinear        = orientation.Collinear
	CounterClockwise = orientation.CounterClockwise
)

// Index returns the orientation of the turn p1 -> p2 -> q: CounterClockwise
// if q lies to the left of the directed line through p1 and p2, Clockwise if
// it lies to the right, and Collinear only if the three points are exactly
// collinear.
func Index(p1, p2, q *Point) Orientation {
	return orientation.Index(p1, p2, q)
}

// IsCCW reports whether the ring's vertices wind counterclockwise. The ring
// must be closed (first point equal to last) and contain at least 4 points;
// smaller rings produce an error. Rings whose winding is geometrically
// indeterminate (flat rings, coincident cap points) report false.
func IsCCW(ring *Ring) (result bool, err error) {
	defer func() {
		recoveredErr := orientation.HandleRingPanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return orientation.IsCCW(ring), nil
}
