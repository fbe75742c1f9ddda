package encoder

import (
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/sat"
)

// encodeLinearLitLog encodes `sum op 0` where every term is log-encoded and
// op is Eq, Ne, or Ge (§4.5 "Log linear"). Positive-coefficient terms and
// the (if positive) constant feed a "P" bit vector; negative-coefficient
// terms and a negative constant feed an "N" bit vector; the comparator is
// then evaluated bitwise between P and N.
func encodeLinearLitLog(env *env, lit linearLitView) *clauseSet {
	var posEntries, negEntries []weightedLit
	for _, t := range lit.terms {
		enc := env.m.getEncoding(t.Var).log
		entries := weightedBitsForTerm(enc, t.Coef)
		if t.Coef >= 0 {
			posEntries = append(posEntries, entries...)
		} else {
			negEntries = append(negEntries, entries...)
		}
	}
	if lit.constant >= 0 {
		posEntries = append(posEntries, constEntries(env, lit.constant)...)
	} else {
		negEntries = append(negEntries, constEntries(env, lit.constant.Neg())...)
	}
	p := addWeightedBits(env, posEntries)
	n := addWeightedBits(env, negEntries)

	cs := newClauseSet()
	length := len(p)
	if len(n) > length {
		length = len(n)
	}
	switch lit.op {
	case csp.Eq:
		for i := 0; i < length; i++ {
			pi, ni := bitAt(env, p, i), bitAt(env, n, i)
			cs.push([]sat.Lit{pi.Not(), ni})
			cs.push([]sat.Lit{pi, ni.Not()})
		}
	case csp.Ne:
		auxLits := make([]sat.Lit, length)
		for i := 0; i < length; i++ {
			pi, ni := bitAt(env, p, i), bitAt(env, n, i)
			auxLits[i] = defineGate(env, []sat.Lit{pi, ni}, func(v []bool) bool { return v[0] != v[1] })
		}
		cs.push(auxLits)
	case csp.Ge:
		sub := compareGe(env, p, n)
		cs.push([]sat.Lit{sub})
	default:
		fail("encodeLinearLitLog: comparator %v must already be normalized to Eq/Ne/Ge", lit.op)
	}
	return cs
}

// compareGe builds the §4.5 "Ge" prefix chain: processed from the least to
// the most significant bit, sub tracks "P >= N considering bits up to and
// including the current position". Each step lets the current bit decide
// and falls back to the lower bits only when P_i == N_i, so the bit
// processed last (the most significant) carries the most weight, and the
// final sub is the full comparison.
func compareGe(env *env, p, n []sat.Lit) sat.Lit {
	length := len(p)
	if len(n) > length {
		length = len(n)
	}
	sub := env.trueLit()
	for i := 0; i < length; i++ {
		pi, ni := bitAt(env, p, i), bitAt(env, n, i)
		sub = defineGate(env, []sat.Lit{pi, ni, sub}, func(v []bool) bool {
			return (v[0] && !v[1]) || (v[0] == v[1] && v[2])
		})
	}
	return sub
}
