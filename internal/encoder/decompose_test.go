package encoder

import (
	"testing"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/domain"
	"github.com/csp-sat/encoder/internal/sat"
	"github.com/stretchr/testify/require"
)

func newDirectVars(t *testing.T, cfg *csp.Config, n int, low, high arith.CheckedInt) (*env, *csp.NormCSP, []csp.IntVar) {
	t.Helper()
	vars := csp.NewNormCSPVars()
	norm := csp.NewNormCSP(vars)
	e := &env{norm: norm, sat: sat.New(), m: NewEncodeMap(), cfg: cfg, tracer: DefaultTracer{}}
	ids := make([]csp.IntVar, n)
	for i := range ids {
		v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(low, high)})
		ids[i] = v
		encodeIntVarDirect(e, v)
	}
	return e, norm, ids
}

// TestDecomposeLinearLitSplitsUnderThreshold checks the mixed decomposer's
// mechanical splitting behavior in isolation.
func TestDecomposeLinearLitSplitsUnderThreshold(t *testing.T) {
	cfg := csp.NewConfig(csp.WithDomainProductThreshold(4))
	e, _, ids := newDirectVars(t, cfg, 4, 0, 2)
	sum := sumOf(ids, []arith.CheckedInt{1, 1, 1, 1}, -4)
	lit := csp.NewLinearLit(sum, csp.Ge)
	decomposed := decomposeLinearLit(e, lit, KindDirect)
	require.Greater(t, len(decomposed), 1, "expected the threshold to force at least one split")
}

// TestDecomposeLinearLitForcedSplitEndToEnd checks the oracle property holds
// once a low DomainProductThreshold forces the mixed decomposer to
// introduce an auxiliary variable partway through encoding.
func TestDecomposeLinearLitForcedSplitEndToEnd(t *testing.T) {
	cfg := csp.NewConfig(csp.WithDomainProductThreshold(4))
	vars := csp.NewNormCSPVars()
	norm := csp.NewNormCSP(vars)
	s := sat.New()
	m := NewEncodeMap()
	e := &env{norm: norm, sat: s, m: m, cfg: cfg, tracer: DefaultTracer{}}

	ids := make([]csp.IntVar, 4)
	for i := range ids {
		v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(0, 2)})
		ids[i] = v
		encodeIntVarDirect(e, v)
	}
	sum := sumOf(ids, []arith.CheckedInt{1, 1, 1, 1}, -4)
	lit := csp.NewLinearLit(sum, csp.Ge)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, ids)
	domains := [][]int32{rangeVals(0, 2), rangeVals(0, 2), rangeVals(0, 2), rangeVals(0, 2)}
	want := bruteForce(domains, func(vals []int32) bool {
		return vals[0]+vals[1]+vals[2]+vals[3]-4 >= 0
	})
	requireSameTuples(t, got, want)
}

// TestDecomposeLinearLitLogSplitsUnderCap checks the log decomposer's
// mechanical splitting behavior with more than 6 terms.
func TestDecomposeLinearLitLogSplitsUnderCap(t *testing.T) {
	cfg := csp.NewConfig()
	vars := csp.NewNormCSPVars()
	norm := csp.NewNormCSP(vars)
	e := &env{norm: norm, sat: sat.New(), m: NewEncodeMap(), cfg: cfg, tracer: DefaultTracer{}}

	const n = 8
	ids := make([]csp.IntVar, n)
	coefs := make([]arith.CheckedInt, n)
	for i := range ids {
		v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(0, 1)})
		ids[i] = v
		encodeIntVarLog(e, v)
		coefs[i] = 1
	}
	sum := sumOf(ids, coefs, -3)
	lit := csp.NewLinearLit(sum, csp.Eq)
	decomposed := decomposeLinearLitLog(e, lit)
	require.Greater(t, len(decomposed), 1)
}

// TestDecomposeLinearLitLogForcedSplitEndToEnd is the log-decomposer oracle
// check: more than 6 terms must still produce the correct solution set.
func TestDecomposeLinearLitLogForcedSplitEndToEnd(t *testing.T) {
	cfg := csp.NewConfig()
	vars := csp.NewNormCSPVars()
	norm := csp.NewNormCSP(vars)
	s := sat.New()
	m := NewEncodeMap()
	e := &env{norm: norm, sat: s, m: m, cfg: cfg, tracer: DefaultTracer{}}

	const n = 8
	ids := make([]csp.IntVar, n)
	coefs := make([]arith.CheckedInt, n)
	for i := range ids {
		v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(0, 1)})
		ids[i] = v
		encodeIntVarLog(e, v)
		coefs[i] = 1
	}
	sum := sumOf(ids, coefs, -3)
	lit := csp.NewLinearLit(sum, csp.Eq)
	norm.Constraints = append(norm.Constraints, csp.NewConstraint(nil, []csp.LinearLit{lit}))
	Encode(norm, s, m, cfg, nil)

	got := enumerateSolutions(t, s, m, ids)
	domains := make([][]int32, n)
	for i := range domains {
		domains[i] = []int32{0, 1}
	}
	want := bruteForce(domains, func(vals []int32) bool {
		total := int32(0)
		for _, v := range vals {
			total += v
		}
		return total-3 == 0
	})
	requireSameTuples(t, got, want)
}
