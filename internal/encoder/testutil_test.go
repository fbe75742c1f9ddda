package encoder

import (
	"sort"
	"testing"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/domain"
	"github.com/csp-sat/encoder/internal/sat"
	"github.com/stretchr/testify/require"
)

// varSpec describes one test variable: its domain and which integer
// encoding to give it.
type varSpec struct {
	low, high arith.CheckedInt
	kind      EncodingKind
}

// buildEncodedVars allocates one IntVar per spec and encodes it with the
// requested kind, returning the fresh NormCSP/SAT/EncodeMap triple plus the
// IntVar handles in order.
func buildEncodedVars(t *testing.T, specs []varSpec) (*csp.NormCSP, *sat.SAT, *EncodeMap, []csp.IntVar, *csp.Config) {
	t.Helper()
	vars := csp.NewNormCSPVars()
	norm := csp.NewNormCSP(vars)
	s := sat.New()
	m := NewEncodeMap()
	cfg := csp.NewConfig()
	e := &env{norm: norm, sat: s, m: m, cfg: cfg, tracer: DefaultTracer{}}

	ids := make([]csp.IntVar, len(specs))
	for i, sp := range specs {
		v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(sp.low, sp.high)})
		ids[i] = v
		switch sp.kind {
		case KindOrder:
			encodeIntVarOrder(e, v)
		case KindDirect:
			encodeIntVarDirect(e, v)
		case KindLog:
			encodeIntVarLog(e, v)
		}
	}
	return norm, s, m, ids, cfg
}

// buildEnv is buildEncodedVars plus the *env wrapping the same collaborators,
// for tests that call package-internal functions directly.
func buildEnv(t *testing.T, specs []varSpec) (*env, []csp.IntVar) {
	t.Helper()
	norm, s, m, ids, cfg := buildEncodedVars(t, specs)
	return &env{norm: norm, sat: s, m: m, cfg: cfg, tracer: DefaultTracer{}}, ids
}

// tuple is one decoded assignment of the test variables, in variable order.
type tuple []int32

func tupleLess(a, b tuple) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func sortTuples(ts []tuple) {
	sort.Slice(ts, func(i, j int) bool { return tupleLess(ts[i], ts[j]) })
}

// enumerateSolutions repeatedly solves s, decodes vars from each model, and
// blocks exactly that variable assignment (not the whole SAT model) so
// distinct satisfying tuples are enumerated without being inflated by
// incidental freedom in auxiliary/decomposition literals.
func enumerateSolutions(t *testing.T, s *sat.SAT, m *EncodeMap, vars []csp.IntVar) []tuple {
	t.Helper()
	var out []tuple
	for i := 0; i < 100000; i++ {
		if !s.Solve() {
			break
		}
		model := s.Model()
		tup := make(tuple, len(vars))
		blocking := make([]sat.Lit, 0)
		for j, v := range vars {
			val, ok := m.GetIntValueChecked(model, v)
			require.True(t, ok)
			tup[j] = val.Int32()
			blocking = append(blocking, blockingLitsFor(model, m, v)...)
		}
		out = append(out, tup)
		if len(blocking) == 0 {
			break
		}
		s.AddClause(blocking)
	}
	return out
}

// blockingLitsFor returns, for one variable's own encoding literals, the
// negation of each literal's current truth value in model — a clause
// fragment that is violated only by models agreeing with every one of
// those literals, i.e. agreeing on this variable's decoded value.
func blockingLitsFor(model *sat.Model, m *EncodeMap, v csp.IntVar) []sat.Lit {
	enc := m.getEncoding(v)
	var lits []sat.Lit
	switch enc.kind {
	case KindOrder:
		lits = enc.order.lits
	case KindDirect:
		lits = enc.direct.lits
	case KindLog:
		lits = enc.log.bits
	}
	out := make([]sat.Lit, len(lits))
	for i, l := range lits {
		if model.Value(l) {
			out[i] = l.Not()
		} else {
			out[i] = l
		}
	}
	return out
}

// bruteForce enumerates every tuple in the Cartesian product of the given
// domains satisfying keep.
func bruteForce(domains [][]int32, keep func([]int32) bool) []tuple {
	var out []tuple
	idx := make([]int, len(domains))
	for {
		vals := make([]int32, len(domains))
		for i, d := range domains {
			vals[i] = d[idx[i]]
		}
		if keep(vals) {
			out = append(out, tuple(vals))
		}
		pos := len(domains) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(domains[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return out
}

func rangeVals(low, high int32) []int32 {
	out := make([]int32, 0, high-low+1)
	for v := low; v <= high; v++ {
		out = append(out, v)
	}
	return out
}

func requireSameTuples(t *testing.T, got, want []tuple) {
	t.Helper()
	sortTuples(got)
	sortTuples(want)
	require.Equal(t, want, got)
}
