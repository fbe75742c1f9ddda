package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/sat"
)

type directTermView struct {
	values []arith.CheckedInt
	lits   []sat.Lit
	coef   arith.CheckedInt
}

func directTermFromEncoding(e encoding, coef arith.CheckedInt) directTermView {
	return directTermView{values: e.direct.d.Values(), lits: e.direct.lits, coef: coef}
}

func (t directTermView) contributionAt(i int) arith.CheckedInt { return t.values[i].Mul(t.coef) }

// indexOfContribution returns the domain index whose contribution equals
// want, or (-1, false).
func (t directTermView) indexOfContribution(want arith.CheckedInt) (int, bool) {
	for i := range t.values {
		if t.contributionAt(i) == want {
			return i, true
		}
	}
	return -1, false
}

// encodeLinearLitDirectEq encodes `sum == 0` where every term is
// direct-encoded (§4.5 "Direct Eq"). It uses the specialized two-term fast
// path when applicable, otherwise a general recursive walk.
func encodeLinearLitDirectEq(env *env, lit linearLitView) *clauseSet {
	if len(lit.terms) == 2 {
		return encodeLinearLitDirectEqTwoTerms(env, lit)
	}
	return encodeLinearLitDirectEqGeneral(env, lit)
}

func encodeLinearLitDirectEqTwoTerms(env *env, lit linearLitView) *clauseSet {
	u := directTermFromEncoding(env.m.getEncoding(lit.terms[0].Var), lit.terms[0].Coef)
	v := directTermFromEncoding(env.m.getEncoding(lit.terms[1].Var), lit.terms[1].Coef)
	cs := newClauseSet()
	for i := range u.values {
		needed := lit.constant.Add(u.contributionAt(i)).Neg()
		if v.coef == 0 {
			continue
		}
		if int64(needed)%int64(v.coef) != 0 {
			cs.push([]sat.Lit{u.lits[i].Not()})
			continue
		}
		wantVVal := arith.CheckedInt(int64(needed) / int64(v.coef))
		j, ok := indexOfValue(v.values, wantVVal)
		if !ok {
			cs.push([]sat.Lit{u.lits[i].Not()})
			continue
		}
		cs.push([]sat.Lit{u.lits[i].Not(), v.lits[j]})
	}
	return cs
}

func indexOfValue(values []arith.CheckedInt, want arith.CheckedInt) (int, bool) {
	for i, v := range values {
		if v == want {
			return i, true
		}
	}
	return -1, false
}

// encodeLinearLitDirectEqGeneral handles the Eq case for arbitrary term
// counts: a recursive walk enumerating one ¬equals(i) escape literal per
// non-final term, with the leaf checking whether the final term has a
// domain value that closes the sum to exactly zero.
func encodeLinearLitDirectEqGeneral(env *env, lit linearLitView) *clauseSet {
	terms := make([]directTermView, len(lit.terms))
	for i, t := range lit.terms {
		terms[i] = directTermFromEncoding(env.m.getEncoding(t.Var), t.Coef)
	}
	cs := newClauseSet()
	var walk func(idx int, acc []sat.Lit, running arith.CheckedInt)
	walk = func(idx int, acc []sat.Lit, running arith.CheckedInt) {
		if idx == len(terms)-1 {
			t := terms[idx]
			needed := running.Add(lit.constant).Neg()
			j, ok := t.indexOfContribution(needed)
			if !ok {
				cs.push(append([]sat.Lit{}, acc...))
				return
			}
			cs.push(append(append([]sat.Lit{}, acc...), t.lits[j]))
			return
		}
		t := terms[idx]
		for i := range t.values {
			walk(idx+1, append(acc, t.lits[i].Not()), running.Add(t.contributionAt(i)))
		}
	}
	walk(0, nil, 0)
	return cs
}
