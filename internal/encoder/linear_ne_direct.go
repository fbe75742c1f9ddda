package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/sat"
)

// encodeLinearLitDirectNe encodes `sum != 0` where every term is
// direct-encoded (§4.5 "Direct Ne"): a recursive exhaustive walk chooses one
// literal per term; a leaf whose chosen values sum to exactly 0 is
// forbidden by emitting the negation of that conjunction.
func encodeLinearLitDirectNe(env *env, lit linearLitView) *clauseSet {
	terms := make([]directTermView, len(lit.terms))
	for i, t := range lit.terms {
		terms[i] = directTermFromEncoding(env.m.getEncoding(t.Var), t.Coef)
	}
	cs := newClauseSet()

	var walk func(idx int, chosen []sat.Lit, running arith.CheckedInt)
	walk = func(idx int, chosen []sat.Lit, running arith.CheckedInt) {
		if idx == len(terms) {
			if running.Add(lit.constant) == 0 {
				clause := make([]sat.Lit, len(chosen))
				for i, l := range chosen {
					clause[i] = l.Not()
				}
				cs.push(clause)
			}
			return
		}
		t := terms[idx]
		for i := range t.values {
			walk(idx+1, append(chosen, t.lits[i]), running.Add(t.contributionAt(i)))
		}
	}
	walk(0, nil, 0)
	return cs
}
