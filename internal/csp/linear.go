package csp

import (
	"fmt"
	"strings"

	"github.com/csp-sat/encoder/internal/arith"
)

// CmpOp is a linear-literal comparator.
type CmpOp int

const (
	Eq CmpOp = iota
	Ne
	Le
	Lt
	Ge
	Gt
)

func (op CmpOp) String() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "!="
	case Le:
		return "<="
	case Lt:
		return "<"
	case Ge:
		return ">="
	case Gt:
		return ">"
	default:
		return "?"
	}
}

// LinearTerm is one IntVar*coefficient summand of a LinearSum.
type LinearTerm struct {
	Var  IntVar
	Coef arith.CheckedInt
}

// LinearSum is a deterministic-order mapping from IntVar to nonzero
// coefficient, plus a constant term.
type LinearSum struct {
	terms    []LinearTerm
	index    map[IntVar]int
	Constant arith.CheckedInt
}

// NewLinearSum builds an empty sum with the given constant.
func NewLinearSum(constant arith.CheckedInt) *LinearSum {
	return &LinearSum{index: make(map[IntVar]int), Constant: constant}
}

// Add folds coef*v into the sum, merging with any existing term for v. A
// term whose coefficient becomes zero is dropped.
func (s *LinearSum) Add(v IntVar, coef arith.CheckedInt) {
	if i, ok := s.index[v]; ok {
		merged := s.terms[i].Coef.Add(coef)
		if merged == 0 {
			s.removeAt(i)
			return
		}
		s.terms[i].Coef = merged
		return
	}
	if coef == 0 {
		return
	}
	s.index[v] = len(s.terms)
	s.terms = append(s.terms, LinearTerm{Var: v, Coef: coef})
}

func (s *LinearSum) removeAt(i int) {
	last := len(s.terms) - 1
	removed := s.terms[i].Var
	s.terms[i] = s.terms[last]
	s.terms = s.terms[:last]
	delete(s.index, removed)
	if i != last {
		s.index[s.terms[i].Var] = i
	}
}

// Len returns the number of nonzero terms.
func (s *LinearSum) Len() int { return len(s.terms) }

// Terms returns the terms in deterministic (insertion) order. The returned
// slice must not be mutated.
func (s *LinearSum) Terms() []LinearTerm { return s.terms }

// CoefOf returns the coefficient of v, or 0 if v does not appear.
func (s *LinearSum) CoefOf(v IntVar) arith.CheckedInt {
	if i, ok := s.index[v]; ok {
		return s.terms[i].Coef
	}
	return 0
}

// Clone returns a deep copy of s.
func (s *LinearSum) Clone() *LinearSum {
	c := &LinearSum{
		terms:    make([]LinearTerm, len(s.terms)),
		index:    make(map[IntVar]int, len(s.index)),
		Constant: s.Constant,
	}
	copy(c.terms, s.terms)
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}

// Negate returns -sum (coefficients and constant both negated).
func (s *LinearSum) Negate() *LinearSum {
	out := NewLinearSum(s.Constant.Neg())
	for _, t := range s.terms {
		out.Add(t.Var, t.Coef.Neg())
	}
	return out
}

func (s *LinearSum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%d*v%d", t.Coef, t.Var)
	}
	fmt.Fprintf(&b, " + %d", s.Constant)
	return b.String()
}

// LinearLit is a linear literal: `sum op 0`.
type LinearLit struct {
	Sum *LinearSum
	Op  CmpOp
}

// NewLinearLit constructs a linear literal.
func NewLinearLit(sum *LinearSum, op CmpOp) LinearLit {
	return LinearLit{Sum: sum, Op: op}
}

func (l LinearLit) String() string {
	return fmt.Sprintf("(%s) %s 0", l.Sum.String(), l.Op)
}
