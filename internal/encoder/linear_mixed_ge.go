package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/sat"
)

// mixedTerm is one term of a Mixed-Ge literal, generalized over order- and
// direct-encoded variables so the branch-and-bound walk below can treat
// both uniformly. values/lits are always stored so that contributionAt is
// ascending in i, regardless of the term's coefficient sign: a negative
// coefficient re-indexes the domain in reverse (§4.5 "Normalize per
// term"), so the rest of this file never has to special-case sign.
type mixedTerm struct {
	isDirect bool
	values   []arith.CheckedInt
	coef     arith.CheckedInt
	lits     []sat.Lit // order: len(values)-1; direct: len(values)
}

func (t mixedTerm) contributionAt(i int) arith.CheckedInt {
	return t.values[i].Mul(t.coef)
}

func (t mixedTerm) maxContribution() arith.CheckedInt {
	return t.contributionAt(len(t.values) - 1)
}

// escapeAt returns the literal guarding the branch that assumes
// value == values[i]: for order, "actually >= values[i+1]"; for direct,
// "actually != values[i]".
func (t mixedTerm) escapeAt(i int) sat.Lit {
	if t.isDirect {
		return t.lits[i].Not()
	}
	return t.lits[i]
}

// atLeastFrom returns the clause fragment asserting "value >= values[j]"
// for the final term in the walk: a single literal for order, a
// disjunction of the remaining equals-literals for direct.
func (t mixedTerm) atLeastFrom(j int) []sat.Lit {
	if !t.isDirect {
		if j == 0 {
			return nil // always true, no literal needed
		}
		return []sat.Lit{t.lits[j-1]}
	}
	return append([]sat.Lit{}, t.lits[j:]...)
}

func mixedTermFromEncoding(e encoding, coef arith.CheckedInt) mixedTerm {
	switch e.kind {
	case KindOrder:
		return normalizeMixedTerm(false, e.order.d.Values(), e.order.lits, coef)
	case KindDirect:
		return normalizeMixedTerm(true, e.direct.d.Values(), e.direct.lits, coef)
	default:
		fail("mixedTermFromEncoding: term is neither order- nor direct-encoded")
		panic("unreachable")
	}
}

// normalizeMixedTerm folds coef's sign into the term's value/literal
// ordering (§4.5 "Normalize per term": "when the coefficient is negative,
// re-index the domain in reverse"). For a nonnegative coefficient, ascending
// domain order is already ascending contribution order, so values/lits pass
// through unchanged. For a negative coefficient, both values and lits are
// reversed; for order encoding each reversed literal is additionally
// negated, since lits[k] <=> value >= values[k+1] must become "value is
// below" the corresponding reversed threshold.
func normalizeMixedTerm(isDirect bool, values []arith.CheckedInt, lits []sat.Lit, coef arith.CheckedInt) mixedTerm {
	if coef >= 0 {
		return mixedTerm{isDirect: isDirect, values: values, coef: coef, lits: lits}
	}
	n := len(values)
	revValues := make([]arith.CheckedInt, n)
	for i, v := range values {
		revValues[n-1-i] = v
	}
	revLits := make([]sat.Lit, len(lits))
	for i, l := range lits {
		if isDirect {
			revLits[len(lits)-1-i] = l
		} else {
			revLits[len(lits)-1-i] = l.Not()
		}
	}
	return mixedTerm{isDirect: isDirect, values: revValues, coef: coef, lits: revLits}
}

// encodeLinearLitMixedGe encodes a literal `sum >= 0` whose terms are all
// order- or direct-encoded, via the recursive branch-and-bound walk of
// §4.5 "Mixed Ge": process terms in order, maintaining a running bound;
// prune whenever even the best case of the remaining terms cannot reach 0;
// on the last term emit the single tightest qualifying literal (or, for a
// direct last term, the disjunction of qualifying equals-literals).
func encodeLinearLitMixedGe(env *env, lit linearLitView) *clauseSet {
	terms := make([]mixedTerm, len(lit.terms))
	for i, t := range lit.terms {
		terms[i] = mixedTermFromEncoding(env.m.getEncoding(t.Var), t.Coef)
	}
	maxRemaining := make([]arith.CheckedInt, len(terms)+1)
	for i := len(terms) - 1; i >= 0; i-- {
		maxRemaining[i] = maxRemaining[i+1].Add(terms[i].maxContribution())
	}
	cs := newClauseSet()
	w := &mixedGeWalk{cs: cs, terms: terms, constant: lit.constant, maxRemaining: maxRemaining}
	w.walk(0, nil, 0)
	return cs
}

type mixedGeWalk struct {
	cs           *clauseSet
	terms        []mixedTerm
	constant     arith.CheckedInt
	maxRemaining []arith.CheckedInt
}

func (w *mixedGeWalk) walk(termIdx int, acc []sat.Lit, runningSum arith.CheckedInt) {
	if termIdx == len(w.terms)-1 {
		t := w.terms[termIdx]
		needed := runningSum.Add(w.constant).Neg()
		if t.maxContribution() < needed {
			// no value of the last term reaches 0: the branch itself is
			// infeasible, so its escape literals alone form the clause.
			w.cs.push(append([]sat.Lit{}, acc...))
			return
		}
		j := tightestMixedThreshold(t, needed)
		tail := t.atLeastFrom(j)
		if tail == nil && j == 0 {
			// literal always holds for this branch: nothing to emit.
			return
		}
		clause := append(append([]sat.Lit{}, acc...), tail...)
		w.cs.push(clause)
		return
	}
	t := w.terms[termIdx]
	limit := len(t.values) - 1
	for i := 0; i < limit; i++ {
		contribution := t.contributionAt(i)
		newRunning := runningSum.Add(contribution)
		upperBound := newRunning.Add(w.constant).Add(w.maxRemaining[termIdx+1])
		if upperBound < 0 {
			clause := append(append([]sat.Lit{}, acc...), t.escapeAt(i))
			w.cs.push(clause)
			continue
		}
		w.walk(termIdx+1, append(acc, t.escapeAt(i)), newRunning)
	}
	// this term takes its maximum domain value: no escape literal is
	// needed for that branch, so recurse directly with the max
	// contribution folded in (mirrors the unconditional fall-through
	// after the loop in the source this was ported from).
	w.walk(termIdx+1, acc, runningSum.Add(t.maxContribution()))
}

// tightestMixedThreshold mirrors tightestThreshold in internal/sat, but
// over mixedTerm's generalized value/coefficient pair.
func tightestMixedThreshold(t mixedTerm, needed arith.CheckedInt) int {
	for i := 0; i < len(t.values); i++ {
		if t.contributionAt(i) >= needed {
			return i
		}
	}
	return len(t.values) - 1
}
