package sat

// AddOrderEncodingLinear is the SAT engine's native primitive for a linear
// "ge" constraint over order-encoded terms (see encoder's Mixed-Ge
// applicability test). gini has no pseudo-boolean primitive of its own, so
// this emits the same branch-and-bound clause set the encoder's general
// Mixed-Ge path would, specialized to all-order terms. It is a deliberate,
// narrower duplicate of that algorithm kept inside the sat package: the
// encoder package cannot be imported here without an import cycle, and the
// whole point of a "native" path is that it lives at the engine boundary.
//
// lits[j] is term j's order-encoding literal vector (length len(domain[j])-1,
// lits[j][i] true iff value_j >= domain[j][i+1]). The asserted constraint is
// sum_j coefs[j]*value_j + constant >= 0. The walk handles nonnegative
// coefficients only; the encoder folds each coefficient's sign into the
// domain beforehand and always passes coefficient 1.
func (s *SAT) AddOrderEncodingLinear(lits [][]Lit, domains [][]int32, coefs []int32, constant int32) {
	terms := make([]orderLinearTerm, len(lits))
	for j := range lits {
		terms[j] = orderLinearTerm{
			lits:   lits[j],
			domain: domains[j],
			coef:   int64(coefs[j]),
		}
	}
	w := &orderLinearWalk{sat: s, terms: terms, constant: int64(constant)}
	w.maxRemaining = make([]int64, len(terms)+1)
	for i := len(terms) - 1; i >= 0; i-- {
		w.maxRemaining[i] = w.maxRemaining[i+1] + terms[i].maxContribution()
	}
	w.walk(0, nil, 0)
}

type orderLinearTerm struct {
	lits   []Lit
	domain []int32
	coef   int64
}

// contributionAt returns coef * domain[i].
func (t orderLinearTerm) contributionAt(i int) int64 {
	return t.coef * int64(t.domain[i])
}

func (t orderLinearTerm) maxContribution() int64 {
	if t.coef >= 0 {
		return t.contributionAt(len(t.domain) - 1)
	}
	return t.contributionAt(0)
}

// atLeast returns the literal asserting value_j >= domain[i], for
// i in [1, len(domain)-1].
func (t orderLinearTerm) atLeast(i int) Lit {
	return t.lits[i-1]
}

type orderLinearWalk struct {
	sat          *SAT
	terms        []orderLinearTerm
	constant     int64
	maxRemaining []int64
	accSum       int64
}

// walk mirrors the encoder's generic Mixed-Ge recursion (see
// internal/encoder/linear_mixed_ge.go), restricted to order terms: for each
// term it enumerates cut points i in [0, len(domain)-2] representing
// "value == domain[i]" (lits up to i false), prunes whenever the remaining
// terms' maximum possible contribution cannot reach 0, and on the last term
// emits the single tightest at-least literal.
func (w *orderLinearWalk) walk(termIdx int, acc []Lit, runningSum int64) {
	if termIdx == len(w.terms)-1 {
		t := w.terms[termIdx]
		needed := -(runningSum + w.constant)
		if t.contributionAt(0) >= needed {
			// the smallest value already suffices: nothing to emit.
			return
		}
		i := tightestThreshold(t, needed)
		clause := append(append([]Lit{}, acc...), t.atLeast(i))
		w.sat.AddClause(clause)
		return
	}
	t := w.terms[termIdx]
	for i := 0; i < len(t.domain)-1; i++ {
		contribution := t.contributionAt(i)
		newRunning := runningSum + contribution
		upperBound := newRunning + w.constant + w.maxRemaining[termIdx+1]
		if upperBound < 0 {
			// This branch can never reach >=0: force a stronger threshold
			// directly instead of recursing further.
			clause := append(append([]Lit{}, acc...), t.atLeast(i+1))
			w.sat.AddClause(clause)
			continue
		}
		w.walk(termIdx+1, append(acc, t.atLeast(i+1)), newRunning)
	}
	// the term at its maximum value has no escape literal: recurse with
	// that contribution folded in.
	w.walk(termIdx+1, acc, runningSum+t.maxContribution())
}

// tightestThreshold returns the smallest domain index i (1-based threshold,
// i.e. suitable for atLeast) such that t.coef*domain[i] >= needed, or the
// maximal index if even the maximum contribution falls short (the
// surrounding constraint is then unsatisfiable given prior branch choices,
// and the emitted clause correctly asserts the unreachable literal).
func tightestThreshold(t orderLinearTerm, needed int64) int {
	if t.coef >= 0 {
		for i := 1; i < len(t.domain); i++ {
			if t.contributionAt(i) >= needed {
				return i
			}
		}
		return len(t.domain) - 1
	}
	for i := 1; i < len(t.domain); i++ {
		if t.contributionAt(i) >= needed {
			return i
		}
	}
	return len(t.domain) - 1
}
