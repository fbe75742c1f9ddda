// Package domain models the finite, strictly ascending integer domains that
// bounded integer variables range over. Domains are produced by the
// (out-of-scope) normalizer and treated as read-only here.
package domain

import (
	"sort"

	"github.com/csp-sat/encoder/internal/arith"
)

// Domain is a finite, strictly ascending sequence of CheckedInt values.
type Domain struct {
	values []arith.CheckedInt
}

// New builds a Domain from values already known to be strictly ascending.
// It does not sort or dedupe; callers that cannot guarantee this must use
// NewFromUnsorted instead.
func New(values []arith.CheckedInt) Domain {
	cp := make([]arith.CheckedInt, len(values))
	copy(cp, values)
	return Domain{values: cp}
}

// NewFromUnsorted sorts and dedupes an arbitrary slice of values into a
// Domain.
func NewFromUnsorted(values []arith.CheckedInt) Domain {
	cp := make([]arith.CheckedInt, len(values))
	copy(cp, values)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return Domain{values: out}
}

// Range returns an inclusive [low, high] Domain.
func Range(low, high arith.CheckedInt) Domain {
	if low > high {
		return Domain{}
	}
	values := make([]arith.CheckedInt, 0, int(high-low)+1)
	for v := low; v <= high; v++ {
		values = append(values, v)
	}
	return Domain{values: values}
}

// Len returns the number of values in the domain.
func (d Domain) Len() int { return len(d.values) }

// At returns the i-th value in ascending order.
func (d Domain) At(i int) arith.CheckedInt { return d.values[i] }

// Values returns the domain's values, in ascending order. The returned
// slice must not be mutated.
func (d Domain) Values() []arith.CheckedInt { return d.values }

// Low returns the smallest value in the domain.
func (d Domain) Low() arith.CheckedInt { return d.values[0] }

// High returns the largest value in the domain.
func (d Domain) High() arith.CheckedInt { return d.values[len(d.values)-1] }

// Empty reports whether the domain has no values.
func (d Domain) Empty() bool { return len(d.values) == 0 }

// AsRange widens the domain to its enclosing inclusive Range.
func (d Domain) AsRange() arith.Range {
	if d.Empty() {
		return arith.NewRange(1, 0)
	}
	return arith.NewRange(d.Low(), d.High())
}

// IndexOf returns the position of v in the domain and true, or (-1, false)
// if v is not a domain value.
func (d Domain) IndexOf(v arith.CheckedInt) (int, bool) {
	i := sort.Search(len(d.values), func(i int) bool { return d.values[i] >= v })
	if i < len(d.values) && d.values[i] == v {
		return i, true
	}
	return -1, false
}

// Contains reports whether v is a domain value.
func (d Domain) Contains(v arith.CheckedInt) bool {
	_, ok := d.IndexOf(v)
	return ok
}

// LowerBoundIndex returns the smallest index i such that d.At(i) >= v, or
// Len() if no such index exists.
func (d Domain) LowerBoundIndex(v arith.CheckedInt) int {
	return sort.Search(len(d.values), func(i int) bool { return d.values[i] >= v })
}

// Filter returns the sub-domain of values for which keep returns true.
func (d Domain) Filter(keep func(arith.CheckedInt) bool) Domain {
	out := make([]arith.CheckedInt, 0, len(d.values))
	for _, v := range d.values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return Domain{values: out}
}

// Clamp returns the sub-domain of values within [lo, hi].
func (d Domain) Clamp(lo, hi arith.CheckedInt) Domain {
	return d.Filter(func(v arith.CheckedInt) bool { return v >= lo && v <= hi })
}
