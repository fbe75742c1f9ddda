// Package csp holds the normalized constraint-satisfaction problem data
// model the encoder consumes: Boolean and bounded-integer variables, linear
// sums and literals, constraints, and the extra (non-clausal) constraint
// kinds. Everything here is produced by an out-of-scope normalizer and is
// read mostly as an append-only queue by the encoder.
package csp

import (
	"fmt"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/domain"
)

// BoolVar is an opaque handle to a normalized-CSP Boolean variable.
type BoolVar int

// BoolLit is a Boolean literal of the normalized CSP: a BoolVar together
// with a polarity.
type BoolLit struct {
	Var     BoolVar
	Negated bool
}

// NewBoolLit returns the positive literal for v.
func NewBoolLit(v BoolVar) BoolLit { return BoolLit{Var: v} }

// Not returns the negation of l.
func (l BoolLit) Not() BoolLit { return BoolLit{Var: l.Var, Negated: !l.Negated} }

func (l BoolLit) String() string {
	if l.Negated {
		return fmt.Sprintf("!b%d", l.Var)
	}
	return fmt.Sprintf("b%d", l.Var)
}

// IntVar is an opaque handle to a normalized-CSP integer variable.
type IntVar int

// IntVarRepresentation is the closed tagged union of ways an integer
// variable can be represented. It is an interface with an unexported
// marker method so no package outside csp can add a third variant.
type IntVarRepresentation interface {
	isIntVarRepresentation()
	// Domain returns the enumerable set of values this representation can
	// take, regardless of which concrete variant it is.
	Domain() domain.Domain
}

// DomainRepresentation is a bare enumerable domain.
type DomainRepresentation struct {
	D domain.Domain
}

func (DomainRepresentation) isIntVarRepresentation() {}

// Domain returns the representation's domain.
func (r DomainRepresentation) Domain() domain.Domain { return r.D }

// BinaryRepresentation is a two-valued integer whose value is T iff Cond
// holds, else F. Requires F < T. Log-encoding is not supported for this
// variant (see encoder package).
type BinaryRepresentation struct {
	Cond BoolLit
	F, T arith.CheckedInt
}

func (BinaryRepresentation) isIntVarRepresentation() {}

// Domain returns {F, T} in ascending order.
func (r BinaryRepresentation) Domain() domain.Domain {
	return domain.New([]arith.CheckedInt{r.F, r.T})
}

// IsBinary reports whether repr is a BinaryRepresentation.
func IsBinary(repr IntVarRepresentation) bool {
	_, ok := repr.(BinaryRepresentation)
	return ok
}
