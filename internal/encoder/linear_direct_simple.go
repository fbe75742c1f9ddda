package encoder

import "github.com/csp-sat/encoder/internal/sat"

// encodeLinearLitDirectSimple handles a one-term literal c*x+k op 0 whose
// sole variable is direct-encoded (§4.5 "Direct-simple"). Returns nil if
// the literal is trivially true for every domain value.
func encodeLinearLitDirectSimple(env *env, lit linearLitView) *clauseSet {
	term := lit.terms[0]
	enc := env.m.getEncoding(term.Var).direct
	var oks, ngs []sat.Lit
	for i, d := range enc.d.Values() {
		val := d.Mul(term.Coef).Add(lit.constant)
		if evalCmp(val, lit.op) {
			oks = append(oks, enc.lits[i])
		} else {
			ngs = append(ngs, enc.lits[i].Not())
		}
	}
	if len(ngs) == 0 {
		return nil
	}
	cs := newClauseSet()
	if len(ngs) == 1 {
		cs.push(ngs)
	} else {
		cs.push(oks)
	}
	return cs
}
