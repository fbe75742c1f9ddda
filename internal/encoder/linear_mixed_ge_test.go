package encoder

import (
	"testing"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
)

func TestEncodeLinearLitMixedGeDirectLastTerm(t *testing.T) {
	specs := []varSpec{
		{low: 0, high: 5, kind: KindOrder},
		{low: -2, high: 3, kind: KindDirect},
	}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{1, -1}, 1)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(0, 5), rangeVals(-2, 3)}, func(vals []int32) bool {
		return vals[0]-vals[1]+1 >= 0
	})
	requireSameTuples(t, got, want)
}

func TestEncodeLinearLitMixedGeOrderLastTerm(t *testing.T) {
	specs := []varSpec{
		{low: -2, high: 3, kind: KindDirect},
		{low: 0, high: 5, kind: KindOrder},
	}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{-1, 1}, 1)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(-2, 3), rangeVals(0, 5)}, func(vals []int32) bool {
		return -vals[0]+vals[1]+1 >= 0
	})
	requireSameTuples(t, got, want)
}

// Single order-encoded term with a negative coefficient: "-x >= 0" over
// x in {0,1,2} must force x == 0, not accept every value.
func TestEncodeLinearLitMixedGeSingleNegativeCoefTerm(t *testing.T) {
	specs := []varSpec{{low: 0, high: 2, kind: KindOrder}}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{-1}, 0)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(0, 2)}, func(vals []int32) bool {
		return -vals[0] >= 0
	})
	requireSameTuples(t, got, want)
}

// Two order-encoded terms both with positive coefficients: "x + y - 2 >= 0"
// over x,y in {0,1} must reject (x=1,y=0) — the first term's maxed-value
// branch must still constrain the second term.
func TestEncodeLinearLitMixedGeRejectsWhenFirstTermMaxedButSumShort(t *testing.T) {
	specs := []varSpec{{low: 0, high: 1, kind: KindOrder}, {low: 0, high: 1, kind: KindOrder}}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{1, 1}, -2)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(0, 1), rangeVals(0, 1)}, func(vals []int32) bool {
		return vals[0]+vals[1]-2 >= 0
	})
	requireSameTuples(t, got, want)
}

// Negative coefficients mixed with multiple terms and a direct-encoded
// last term, to exercise normalization plus the direct atLeastFrom path
// together.
func TestEncodeLinearLitMixedGeNegativeCoefMultiTermDirectLast(t *testing.T) {
	specs := []varSpec{
		{low: 0, high: 4, kind: KindOrder},
		{low: -3, high: 2, kind: KindDirect},
	}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{-2, -1}, 5)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(0, 4), rangeVals(-3, 2)}, func(vals []int32) bool {
		return -2*vals[0]-vals[1]+5 >= 0
	})
	requireSameTuples(t, got, want)
}
