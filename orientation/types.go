package orientation

// Orientation is the turn made by an ordered triple of points, or the
// winding sense it implies for a ring.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Collinear:
		return "collinear"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "unknown"
}

type Point struct {
	X float64
	Y float64
}

// Note that all points are handled as pointers. A nil *Point is meaningful:
// it is the "no point yet" state, distinct from every coordinate including
// (0, 0). Point values are never mutated, since the predicates depend on
// exact coordinate identity and cannot tolerate loss of precision.

// Equals reports exact coordinate equality. Nil compares equal only to nil.
func (p *Point) Equals(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.X == other.X && p.Y == other.Y
}

// Sequence is the coordinate-sequence collaborator: an indexed, closed run
// of points. Index Len()-1 must hold the same coordinates as index 0. YAt
// exists so the scan over a ring can read y values without materializing
// points.
type Sequence interface {
	Len() int
	At(i int) *Point
	YAt(i int) float64
}

// Ring is a slice-backed Sequence representing a closed polygon boundary.
// The closing point is stored explicitly, so a ring with n distinct
// vertices has n+1 points.
type Ring struct {
	Points []*Point
}

func (r *Ring) Len() int {
	return len(r.Points)
}

func (r *Ring) At(i int) *Point {
	return r.Points[i]
}

func (r *Ring) YAt(i int) float64 {
	return r.Points[i].Y
}
