package orientation

// IsCCW reports whether the ring winds counterclockwise. It relies on the
// convention that rings carry an explicit closing point, so a usable ring
// has at least 4 points (3 distinct vertices plus the closing repeat);
// anything smaller panics with a RingError.
//
// Rather than summing signed area over every edge, which accumulates
// rounding error with ring size and coordinate magnitude, the decision is
// reduced to a single robust orientation test at the topmost feature of the
// ring (its "cap"). Degenerate rings whose winding is geometrically
// indeterminate report false: a perfectly flat ring, a cap without three
// distinct points, and a cap whose points are exactly collinear.
func IsCCW(ring Sequence) bool {
	// # of points without the closing endpoint
	nPts := ring.Len() - 1
	if nPts < 3 {
		fatalf("Ring has fewer than 4 points, so orientation cannot be determined")
	}

	// Find the highest point reached by a rising segment. Descending runs
	// and plateaus not preceded by a rise are skipped on purpose, so the
	// chosen high point sits on a genuine ascent. If no segment ever rises,
	// iUpHi stays 0 and the ring is flat.
	upHiPt := ring.At(0)
	prevY := upHiPt.Y
	var upLowPt *Point // nil until a rising segment is found
	iUpHi := 0
	for i := 1; i <= nPts; i++ {
		py := ring.YAt(i)
		if py > prevY && py >= upHiPt.Y {
			upHiPt = ring.At(i)
			iUpHi = i
			upLowPt = ring.At(i - 1)
		}
		prevY = py
	}
	if iUpHi == 0 {
		return false
	}

	// Walk forward, wrapping over the distinct vertices, past any flat run
	// at the top to the next point that is strictly lower. This terminates
	// because the ring is not flat.
	iDownLow := iUpHi
	for {
		iDownLow = (iDownLow + 1) % nPts
		if iDownLow == iUpHi || ring.YAt(iDownLow) != upHiPt.Y {
			break
		}
	}
	downLowPt := ring.At(iDownLow)
	iDownHi := iDownLow - 1
	if iDownLow == 0 {
		iDownHi = nPts - 1
	}
	downHiPt := ring.At(iDownHi)

	if upHiPt.Equals(downHiPt) {
		// Pointed cap: the top of the ring is a single vertex, and its
		// orientation is the ring's orientation.
		//
		// First reject caps with an A-B-A configuration. This happens when
		// the ring does not contain 3 distinct points or contains
		// coincident segments.
		if upLowPt.Equals(upHiPt) || downLowPt.Equals(upHiPt) || upLowPt.Equals(downLowPt) {
			return false
		}

		// The cap points can still be exactly collinear if the top
		// segments are coincident. Such a ring is invalid and cannot be
		// oriented; Collinear falls through to false.
		return Index(upLowPt, upHiPt, downLowPt) == CounterClockwise
	}

	// Flat cap: the top of the ring is a horizontal segment from upHiPt to
	// downHiPt, and its direction alone determines the winding.
	return downHiPt.X < upHiPt.X
}
