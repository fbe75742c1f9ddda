package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedIntArithmetic(t *testing.T) {
	tt := []struct {
		name string
		a, b CheckedInt
		op   func(a, b CheckedInt) CheckedInt
		want CheckedInt
	}{
		{"add", 3, 4, CheckedInt.Add, 7},
		{"sub", 10, 4, CheckedInt.Sub, 6},
		{"mul", -3, 4, CheckedInt.Mul, -12},
		{"add negative", -5, -5, CheckedInt.Add, -10},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.op(tc.a, tc.b))
		})
	}
}

func TestCheckedIntOverflowPanics(t *testing.T) {
	require.Panics(t, func() {
		CheckedInt(math.MaxInt32).Add(1)
	})
	require.Panics(t, func() {
		CheckedInt(math.MinInt32).Sub(1)
	})
	require.Panics(t, func() {
		CheckedInt(math.MaxInt32).Mul(2)
	})
	require.Panics(t, func() {
		CheckedInt(math.MinInt32).Neg()
	})
}

func TestCheckedIntCmp(t *testing.T) {
	assert.Equal(t, -1, CheckedInt(1).Cmp(2))
	assert.Equal(t, 0, CheckedInt(2).Cmp(2))
	assert.Equal(t, 1, CheckedInt(3).Cmp(2))
}

func TestRangeAdd(t *testing.T) {
	a := NewRange(-2, 5)
	b := NewRange(1, 3)
	assert.Equal(t, NewRange(-1, 8), a.Add(b))
}

func TestRangeMulScalarNegativeSwapsEndpoints(t *testing.T) {
	r := NewRange(2, 5)
	got := r.MulScalar(-3)
	assert.Equal(t, NewRange(-15, -6), got)
}

func TestRangeMulScalarPositive(t *testing.T) {
	r := NewRange(2, 5)
	got := r.MulScalar(3)
	assert.Equal(t, NewRange(6, 15), got)
}

func TestRangeEmpty(t *testing.T) {
	assert.True(t, NewRange(5, 2).Empty())
	assert.False(t, NewRange(2, 5).Empty())
}

func TestRangeContains(t *testing.T) {
	r := NewRange(-2, 5)
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(-2))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.False(t, r.Contains(-3))
}
