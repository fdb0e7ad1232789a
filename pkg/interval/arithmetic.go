package interval

import "math"

// Add returns [a1+b1, a2+b2].
func (i Interval) Add(o Interval) Interval {
	return Interval{lb: lower(i.lb + o.lb), ub: upper(i.ub + o.ub)}
}

// lower and upper replace the NaN of an Inf-Inf bound with the widest bound on its side.
func lower(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}

func upper(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// Neg returns [-a2, -a1].
func (i Interval) Neg() Interval {
	return Interval{lb: -i.ub, ub: -i.lb}
}

// Sub returns [a1-b2, a2-b1], which is i.Add(o.Neg()).
func (i Interval) Sub(o Interval) Interval {
	return Interval{lb: lower(i.lb - o.ub), ub: upper(i.ub - o.lb)}
}

// Mul returns the hull of the four bound products.
func (i Interval) Mul(o Interval) Interval {
	p1 := mul(i.lb, o.lb)
	p2 := mul(i.lb, o.ub)
	p3 := mul(i.ub, o.lb)
	p4 := mul(i.ub, o.ub)
	return Interval{
		lb: math.Min(math.Min(p1, p2), math.Min(p3, p4)),
		ub: math.Max(math.Max(p1, p2), math.Max(p3, p4)),
	}
}

// mul is a bound product where zero absorbs infinity.
func mul(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a * b
}

// Abs returns the range of |x| over the interval. The lower bound is 0 if the interval
// straddles zero.
func (i Interval) Abs() Interval {
	switch {
	case i.lb >= 0:
		return i
	case i.ub <= 0:
		return i.Neg()
	default:
		return Interval{lb: 0, ub: math.Max(-i.lb, i.ub)}
	}
}

// ReLU returns [max(0, lb), max(0, ub)].
func (i Interval) ReLU() Interval {
	return Interval{lb: math.Max(0, i.lb), ub: math.Max(0, i.ub)}
}

func (i *Interval) AddAssign(o Interval) {
	*i = i.Add(o)
}

// SubAssign applies the same cross-bound rule as Sub.
func (i *Interval) SubAssign(o Interval) {
	*i = i.Sub(o)
}

func (i *Interval) MulAssign(o Interval) {
	*i = i.Mul(o)
}

// Less reports whether every value of i is strictly less than every value of o.
// Overlapping intervals are neither Less nor Greater than each other.
func (i Interval) Less(o Interval) bool {
	return i.ub < o.lb
}

func (i Interval) LessOrEqual(o Interval) bool {
	return i.ub <= o.lb
}

func (i Interval) Greater(o Interval) bool {
	return i.lb > o.ub
}

func (i Interval) GreaterOrEqual(o Interval) bool {
	return i.lb >= o.ub
}
