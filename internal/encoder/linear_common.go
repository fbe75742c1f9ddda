package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
)

// evalCmp evaluates `val op 0`.
func evalCmp(val arith.CheckedInt, op csp.CmpOp) bool {
	switch op {
	case csp.Eq:
		return val == 0
	case csp.Ne:
		return val != 0
	case csp.Le:
		return val <= 0
	case csp.Lt:
		return val < 0
	case csp.Ge:
		return val >= 0
	case csp.Gt:
		return val > 0
	default:
		fail("evalCmp: unknown comparator %v", op)
		panic("unreachable")
	}
}

// sumRange computes range(sum) = sum_i range(x_i)*c_i + const, used by
// Step A's range-level unsatisfiability check. The decomposers do not use
// it: their auxiliary domains are the exact reachable values of the
// accumulated terms, not narrowed by the rest of the sum.
func sumRange(env *env, sum *csp.LinearSum) arith.Range {
	r := arith.NewRange(sum.Constant, sum.Constant)
	for _, t := range sum.Terms() {
		termRange := env.m.getEncoding(t.Var).Range().MulScalar(t.Coef)
		r = r.Add(termRange)
	}
	return r
}

// isUnsatisfiableLinear reports whether `sum op 0` can never hold given the
// range-level bounds of sum, i.e. whether op disagrees with range (§4.3
// Step A).
func isUnsatisfiableLinear(r arith.Range, op csp.CmpOp) bool {
	switch op {
	case csp.Eq:
		return !r.Contains(0)
	case csp.Ne:
		return r.Low == 0 && r.High == 0
	case csp.Le:
		return r.Low > 0
	case csp.Lt:
		return r.Low >= 0
	case csp.Ge:
		return r.High < 0
	case csp.Gt:
		return r.High <= 0
	default:
		return false
	}
}

func domainSizeOf(env *env, v csp.IntVar) int {
	return env.norm.Vars.IntVar(v).Domain().Len()
}
