package encoder

import (
	"testing"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/stretchr/testify/require"
)

func TestEncodeLinearLitDirectSimpleTrivialReturnsNil(t *testing.T) {
	e, vars := buildEnv(t, []varSpec{{low: 0, high: 3, kind: KindDirect}})
	sum := sumOf(vars, []arith.CheckedInt{1}, -3)
	lit := csp.NewLinearLit(sum, csp.Le) // x - 3 <= 0 holds for every x in [0,3]
	cs := encodeLinearLitDirectSimple(e, viewOf(lit))
	require.Nil(t, cs)
}

func TestEncodeLinearLitDirectSimpleOracle(t *testing.T) {
	specs := []varSpec{{low: -3, high: 4, kind: KindDirect}}
	norm, s, m, vars, cfg := buildEncodedVars(t, specs)
	sum := sumOf(vars, []arith.CheckedInt{2}, -1)
	lit := csp.NewLinearLit(sum, csp.Lt)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, vars)
	want := bruteForce([][]int32{rangeVals(-3, 4)}, func(vals []int32) bool {
		return 2*vals[0]-1 < 0
	})
	requireSameTuples(t, got, want)
}
