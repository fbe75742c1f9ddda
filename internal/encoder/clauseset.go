// Package encoder translates a normalized CSP (internal/csp) into SAT
// clauses via internal/sat, choosing among order/direct/log integer
// encodings and five linear-constraint encoding strategies.
package encoder

import "github.com/csp-sat/encoder/internal/sat"

// clauseSet is flat, append-only CSR-style clause storage: data holds every
// literal back to back, indices holds the offset at which each clause
// starts (plus a trailing sentinel equal to len(data)). It exists to
// accumulate clauses cheaply while a constraint is still being simplified,
// before the result is either folded into the surrounding disjunction or
// emitted directly.
type clauseSet struct {
	data    []sat.Lit
	indices []int
}

// newClauseSet returns an empty clause set.
func newClauseSet() *clauseSet {
	return &clauseSet{indices: []int{0}}
}

// push appends one clause.
func (c *clauseSet) push(clause []sat.Lit) {
	c.data = append(c.data, clause...)
	c.indices = append(c.indices, len(c.data))
}

// append concatenates other onto c.
func (c *clauseSet) append(other *clauseSet) {
	base := len(c.data)
	c.data = append(c.data, other.data...)
	for _, idx := range other.indices[1:] {
		c.indices = append(c.indices, base+idx)
	}
}

// len returns the number of clauses.
func (c *clauseSet) len() int { return len(c.indices) - 1 }

// at returns the i-th clause as a literal slice. The returned slice aliases
// c.data and must not be mutated.
func (c *clauseSet) at(i int) []sat.Lit {
	return c.data[c.indices[i]:c.indices[i+1]]
}

// all returns every clause in order.
func (c *clauseSet) all() [][]sat.Lit {
	out := make([][]sat.Lit, c.len())
	for i := range out {
		out[i] = c.at(i)
	}
	return out
}
