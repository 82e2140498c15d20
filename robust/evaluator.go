package robust

import "math/big"

// An Evaluator resolves the exact sign of the cross product
//
//	(p2 - p1) x (q - p2)
//
// for three points given as raw coordinates. The contract is "never a wrong
// sign": the result must be -1, 0 or 1 exactly as mathematics dictates, no
// matter how close to collinear the points are or how large their
// coordinates. How that is achieved is up to the implementation.
type Evaluator interface {
	CrossProductSign(p1x, p1y, p2x, p2y, qx, qy float64) int
}

// DDEvaluator resolves signs with a fast floating-point filter backed by
// double-double arithmetic. The filter decides every case whose determinant
// is safely away from zero; only the ambiguous remainder pays for the
// extended-precision evaluation. This is the default evaluator.
type DDEvaluator struct{}

// safeEpsilon bounds the relative rounding error of the double-precision
// 2x2 determinant. Determinants larger than this times the magnitude of
// their terms have a trustworthy sign.
const safeEpsilon = 1e-15

func (DDEvaluator) CrossProductSign(p1x, p1y, p2x, p2y, qx, qy float64) int {
	if s, ok := filterSign(p1x, p1y, p2x, p2y, qx, qy); ok {
		return s
	}
	dx1 := NewDD(p2x).SubFloat(p1x)
	dy1 := NewDD(p2y).SubFloat(p1y)
	dx2 := NewDD(qx).SubFloat(p2x)
	dy2 := NewDD(qy).SubFloat(p2y)
	return dx1.Mul(dy2).Sub(dy1.Mul(dx2)).Signum()
}

// filterSign evaluates the determinant in ordinary double precision and
// reports whether its sign can be trusted. The second return is false when
// the value falls inside the rounding-error bound around zero.
func filterSign(p1x, p1y, p2x, p2y, qx, qy float64) (int, bool) {
	detLeft := (p1x - qx) * (p2y - qy)
	detRight := (p1y - qy) * (p2x - qx)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return floatSign(det), true
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return floatSign(det), true
		}
		detSum = -detLeft - detRight
	default:
		return floatSign(det), true
	}

	errBound := safeEpsilon * detSum
	if det >= errBound || -det >= errBound {
		return floatSign(det), true
	}
	return 0, false
}

// RatEvaluator resolves signs in exact rational arithmetic. Every float64 is
// a rational number, so the computation has no rounding at all. It is much
// slower than DDEvaluator and exists as the exact reference implementation
// and as a fallback for callers who want zero numeric assumptions.
type RatEvaluator struct{}

func (RatEvaluator) CrossProductSign(p1x, p1y, p2x, p2y, qx, qy float64) int {
	dx1 := new(big.Rat).Sub(new(big.Rat).SetFloat64(p2x), new(big.Rat).SetFloat64(p1x))
	dy1 := new(big.Rat).Sub(new(big.Rat).SetFloat64(p2y), new(big.Rat).SetFloat64(p1y))
	dx2 := new(big.Rat).Sub(new(big.Rat).SetFloat64(qx), new(big.Rat).SetFloat64(p2x))
	dy2 := new(big.Rat).Sub(new(big.Rat).SetFloat64(qy), new(big.Rat).SetFloat64(p2y))
	det := new(big.Rat).Sub(new(big.Rat).Mul(dx1, dy2), new(big.Rat).Mul(dy1, dx2))
	return det.Sign()
}

func floatSign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
