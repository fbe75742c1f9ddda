// Package arith provides overflow-trapping 32-bit integer arithmetic and
// inclusive integer ranges, the two primitive types every other package in
// this module builds on.
package arith

import (
	"fmt"
	"math"
)

// CheckedInt is a 32-bit signed integer whose arithmetic operations panic
// with an OverflowError rather than silently wrapping. Every coefficient,
// constant, and domain value flowing through the encoder is one of these.
type CheckedInt int32

// OverflowError is the panic payload raised when a CheckedInt operation
// would exceed the int32 range.
type OverflowError struct {
	Op          string
	A, B        int64
	Result      int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("arith: %s(%d, %d) = %d overflows int32", e.Op, e.A, e.B, e.Result)
}

func checkRange(op string, a, b, result int64) CheckedInt {
	if result < math.MinInt32 || result > math.MaxInt32 {
		panic(&OverflowError{Op: op, A: a, B: b, Result: result})
	}
	return CheckedInt(result)
}

// Add returns a+b, panicking on overflow.
func (a CheckedInt) Add(b CheckedInt) CheckedInt {
	return checkRange("add", int64(a), int64(b), int64(a)+int64(b))
}

// Sub returns a-b, panicking on overflow.
func (a CheckedInt) Sub(b CheckedInt) CheckedInt {
	return checkRange("sub", int64(a), int64(b), int64(a)-int64(b))
}

// Mul returns a*b, panicking on overflow.
func (a CheckedInt) Mul(b CheckedInt) CheckedInt {
	return checkRange("mul", int64(a), int64(b), int64(a)*int64(b))
}

// Neg returns -a, panicking on overflow (only possible for MinInt32).
func (a CheckedInt) Neg() CheckedInt {
	return checkRange("neg", int64(a), 0, -int64(a))
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a CheckedInt) Cmp(b CheckedInt) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Int32 returns the plain int32 value.
func (a CheckedInt) Int32() int32 { return int32(a) }

// Int returns the value as a platform int, for use as a slice index/length.
func (a CheckedInt) Int() int { return int(a) }

func (a CheckedInt) String() string { return fmt.Sprintf("%d", int32(a)) }
