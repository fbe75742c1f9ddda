package encoder

import (
	"testing"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
)

func TestEncodeLinearLitLogEqOracle(t *testing.T) {
	specs := []varSpec{{low: 1, high: 6, kind: KindLog}, {low: 1, high: 6, kind: KindLog}}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{1, -1}, 0)
	lit := csp.NewLinearLit(sum, csp.Eq)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(1, 6), rangeVals(1, 6)}, func(vals []int32) bool {
		return vals[0] == vals[1]
	})
	requireSameTuples(t, got, want)
}

func TestEncodeLinearLitLogNeOracle(t *testing.T) {
	specs := []varSpec{{low: 1, high: 4, kind: KindLog}, {low: 1, high: 4, kind: KindLog}}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{1, -1}, 0)
	lit := csp.NewLinearLit(sum, csp.Ne)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(1, 4), rangeVals(1, 4)}, func(vals []int32) bool {
		return vals[0] != vals[1]
	})
	requireSameTuples(t, got, want)
}

func TestEncodeLinearLitLogGeOracle(t *testing.T) {
	specs := []varSpec{{low: 0, high: 7, kind: KindLog}, {low: 0, high: 7, kind: KindLog}}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{1, -1}, -1)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(0, 7), rangeVals(0, 7)}, func(vals []int32) bool {
		return vals[0]-vals[1]-1 >= 0
	})
	requireSameTuples(t, got, want)
}
