package orientation

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/hugcis/geos/dbg"
)

// NewRing builds a ring from vertices in order. If the input does not repeat
// its first point at the end, the closing point is appended, so callers can
// pass either open or closed vertex lists.
func NewRing(points ...*Point) *Ring {
	ring := &Ring{Points: points}
	if len(points) > 0 && !points[0].Equals(points[len(points)-1]) {
		ring.Points = append(ring.Points, points[0])
	}
	return ring
}

// Reverse returns the ring with its vertex order flipped. Reversing keeps
// the closing-point convention and inverts the winding of any ring whose
// winding is determinate.
func (r *Ring) Reverse() *Ring {
	newRing := &Ring{}
	for i := len(r.Points) - 1; i >= 0; i-- {
		newRing.Points = append(newRing.Points, r.Points[i])
	}
	return newRing
}

// Rotate returns the ring with its distinct vertices cyclically shifted by
// k, preserving the closing-point convention. Rotation changes where the
// ring "starts" but never its winding.
func (r *Ring) Rotate(k int) *Ring {
	n := len(r.Points) - 1
	newRing := &Ring{Points: make([]*Point, 0, n+1)}
	for i := 0; i < n; i++ {
		newRing.Points = append(newRing.Points, r.Points[CircularIndex(i+k, n)])
	}
	newRing.Points = append(newRing.Points, newRing.Points[0])
	return newRing
}

// ContainsPoint reports whether p lies inside the ring by the even-odd rule,
// counting crossings of the rightward horizontal ray from p. Points exactly
// on the boundary may land on either side.
func (r *Ring) ContainsPoint(p *Point) bool {
	return r.crossingCount(p)%2 == 1
}

// Crossing count helper for the even-odd rule.
func (r *Ring) crossingCount(p *Point) int {
	crossingCount := 0
	for i := 0; i < len(r.Points)-1; i++ {
		a := r.Points[i]
		b := r.Points[i+1]
		// Only edges that straddle the ray's height can cross it. The
		// strict/non-strict split makes a vertex on the ray count once.
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// DbgName gives the ring a stable readable name, colored by winding: green
// for counterclockwise, red for clockwise, cyan when orientation cannot be
// determined.
func (r *Ring) DbgName() string {
	name := dbg.Name(r)
	if len(r.Points) < 4 {
		return aurora.Cyan(name).String()
	}
	if IsCCW(r) {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

func (r *Ring) String() string {
	var parts []string
	for _, p := range r.Points {
		parts = append(parts, fmt.Sprintf("(%v, %v)", p.X, p.Y))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
