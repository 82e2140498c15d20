package robust

// DD is an extended-precision floating-point value represented as an
// unevaluated sum of two float64s, giving roughly 106 significant bits. Only
// the handful of operations needed for sign-exact cross products are
// implemented. The algorithms are the classic error-free transformations
// (Knuth two-sum, Dekker split and two-product).
type DD struct {
	hi, lo float64
}

// splitConstant is 2^27 + 1, used to split a float64 into two half-width
// parts whose product is exact.
const splitConstant = 134217729.0

func NewDD(x float64) DD {
	return DD{hi: x, lo: 0}
}

// SubFloat returns d - y.
func (d DD) SubFloat(y float64) DD {
	return d.AddFloat(-y)
}

// AddFloat returns d + y with the rounding error of the leading sum folded
// into the low word.
func (d DD) AddFloat(y float64) DD {
	s := d.hi + y
	e := s - d.hi
	v := s - e
	v = (y - e) + (d.hi - v)
	f := v + d.lo
	h := s + f
	l := f + (s - h)
	hi := h + l
	lo := l + (h - hi)
	return DD{hi, lo}
}

// Add returns d + y.
func (d DD) Add(y DD) DD {
	s := d.hi + y.hi
	t := d.lo + y.lo
	e := s - d.hi
	f := t - d.lo
	v := s - e
	w := t - f
	v = (y.hi - e) + (d.hi - v)
	w = (y.lo - f) + (d.lo - w)
	e = v + t
	h := s + e
	l := e + (s - h)
	e = w + l
	hi := h + e
	lo := e + (h - hi)
	return DD{hi, lo}
}

// Sub returns d - y.
func (d DD) Sub(y DD) DD {
	return d.Add(DD{-y.hi, -y.lo})
}

// Mul returns d * y. The high words are multiplied exactly via Dekker
// splitting; cross terms are accumulated into the low word.
func (d DD) Mul(y DD) DD {
	c := splitConstant * d.hi
	hx := c - d.hi
	hx = c - hx
	tx := d.hi - hx
	c = splitConstant * y.hi
	hy := c - y.hi
	hy = c - hy
	ty := y.hi - hy
	p := d.hi * y.hi
	q := ((((hx*hy - p) + hx*ty) + tx*hy) + tx*ty) + (d.hi*y.lo + d.lo*y.hi)
	hi := p + q
	lo := q + (p - hi)
	return DD{hi, lo}
}

// Signum returns the sign of the value: -1, 0 or 1.
func (d DD) Signum() int {
	if d.hi > 0 {
		return 1
	}
	if d.hi < 0 {
		return -1
	}
	if d.lo > 0 {
		return 1
	}
	if d.lo < 0 {
		return -1
	}
	return 0
}

// Float64 returns the closest float64 approximation.
func (d DD) Float64() float64 {
	return d.hi + d.lo
}
