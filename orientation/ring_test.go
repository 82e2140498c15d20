package orientation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRing(t *testing.T) {
	// Open input gets a closing point appended
	open := NewRing(&Point{0, 0}, &Point{1, 0}, &Point{0.5, 1})
	assert.Equal(t, 4, open.Len())
	assert.True(t, open.At(0).Equals(open.At(open.Len()-1)))

	// Already-closed input is left alone
	closed := NewRing(&Point{0, 0}, &Point{1, 0}, &Point{0.5, 1}, &Point{0, 0})
	assert.Equal(t, 4, closed.Len())
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestRingReverse(t *testing.T) {
	ring := ringFromCoords(0, 0, 1, 0, 1, 1, 0, 1, 0, 0)
	reversed := ring.Reverse()

	assert.Equal(t, ring.Len(), reversed.Len())
	assert.True(t, reversed.At(0).Equals(reversed.At(reversed.Len()-1)))
	for i := 0; i < ring.Len(); i++ {
		assert.True(t, ring.At(i).Equals(reversed.At(ring.Len()-1-i)))
	}
}

func TestRingRotate(t *testing.T) {
	ring := ringFromCoords(0, 0, 1, 0, 1, 1, 0, 1, 0, 0)

	rotated := ring.Rotate(2)
	assert.Equal(t, ring.Len(), rotated.Len())
	assert.True(t, rotated.At(0).Equals(rotated.At(rotated.Len()-1)))
	assert.True(t, rotated.At(0).Equals(&Point{1, 1}))

	// Rotating by the vertex count is the identity
	full := ring.Rotate(4)
	for i := 0; i < ring.Len(); i++ {
		assert.True(t, ring.At(i).Equals(full.At(i)))
	}

	// Negative rotations work too
	back := ring.Rotate(-1)
	assert.True(t, back.At(0).Equals(&Point{0, 1}))
}

func TestRingContainsPoint(t *testing.T) {
	square := ringFromCoords(0, 0, 2, 0, 2, 2, 0, 2, 0, 0)

	assert.True(t, square.ContainsPoint(&Point{1, 1}))
	assert.True(t, square.ContainsPoint(&Point{0.25, 1.75}))
	assert.False(t, square.ContainsPoint(&Point{3, 1}))
	assert.False(t, square.ContainsPoint(&Point{-1, 1}))
	assert.False(t, square.ContainsPoint(&Point{1, 5}))

	// Containment doesn't depend on winding
	assert.True(t, square.Reverse().ContainsPoint(&Point{1, 1}))

	// Concave ring: the notch is outside
	comb := ringFromCoords(0, 0, 4, 0, 4, 2, 3, 2, 3, 1, 1, 1, 1, 2, 0, 2, 0, 0)
	assert.True(t, comb.ContainsPoint(&Point{0.5, 1.5}))
	assert.False(t, comb.ContainsPoint(&Point{2, 1.5}))
	assert.True(t, comb.ContainsPoint(&Point{2, 0.5}))
}

func TestPointEquals(t *testing.T) {
	a := &Point{1, 2}
	b := &Point{1, 2}
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(&Point{1, 3}))

	// Nil is the "no point" state: equal only to itself, not to any
	// coordinate, including the origin
	var unset *Point
	assert.True(t, unset.Equals(nil))
	assert.False(t, unset.Equals(&Point{0, 0}))
	assert.False(t, a.Equals(nil))
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "clockwise", Clockwise.String())
	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, "counterclockwise", CounterClockwise.String())
}
