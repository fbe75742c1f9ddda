package arith

// Range is an inclusive interval [Low, High] of CheckedInt values. A range
// with Low > High is empty.
type Range struct {
	Low, High CheckedInt
}

// NewRange builds the range [low, high].
func NewRange(low, high CheckedInt) Range {
	return Range{Low: low, High: high}
}

// Empty reports whether the range contains no values.
func (r Range) Empty() bool { return r.Low > r.High }

// Add returns the Minkowski sum of two ranges: [a.Low+b.Low, a.High+b.High].
func (a Range) Add(b Range) Range {
	return Range{Low: a.Low.Add(b.Low), High: a.High.Add(b.High)}
}

// Neg negates a range, swapping endpoints.
func (a Range) Neg() Range {
	return Range{Low: a.High.Neg(), High: a.Low.Neg()}
}

// MulScalar multiplies a range by a scalar coefficient. A negative
// coefficient swaps the endpoints.
func (a Range) MulScalar(c CheckedInt) Range {
	lo := a.Low.Mul(c)
	hi := a.High.Mul(c)
	if c < 0 {
		lo, hi = hi, lo
	}
	return Range{Low: lo, High: hi}
}

// Contains reports whether v lies within the range.
func (a Range) Contains(v CheckedInt) bool {
	return v >= a.Low && v <= a.High
}
