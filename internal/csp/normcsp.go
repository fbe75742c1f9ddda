package csp

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/domain"
)

// NormCSPVars owns the variable representation tables. IntVar handles are
// indices into intReprs; BoolVar handles are indices into a parallel
// counter, since Boolean variables carry no representation of their own.
type NormCSPVars struct {
	intReprs []IntVarRepresentation
	numBools int
}

// NewNormCSPVars returns an empty variable table.
func NewNormCSPVars() *NormCSPVars {
	return &NormCSPVars{}
}

// NewBoolVar allocates a fresh BoolVar handle.
func (v *NormCSPVars) NewBoolVar() BoolVar {
	id := v.numBools
	v.numBools++
	return BoolVar(id)
}

// NumBoolVars returns how many BoolVar handles have been allocated.
func (v *NormCSPVars) NumBoolVars() int { return v.numBools }

// NewIntVar allocates a fresh IntVar bound to repr and returns its handle.
// Used directly by the normalizer and by the encoder's linear decomposer to
// introduce auxiliary variables.
func (v *NormCSPVars) NewIntVar(repr IntVarRepresentation) IntVar {
	id := len(v.intReprs)
	v.intReprs = append(v.intReprs, repr)
	return IntVar(id)
}

// IntVar returns the representation bound to handle id.
func (v *NormCSPVars) IntVar(id IntVar) IntVarRepresentation {
	return v.intReprs[id]
}

// NumIntVars returns how many IntVar handles have been allocated.
func (v *NormCSPVars) NumIntVars() int { return len(v.intReprs) }

// GetDomainLinearSum computes the exact reachable-value domain of a linear
// sum by taking the Minkowski sum of each term's (coefficient-scaled)
// domain. Intended for small term counts, as produced by the linear
// decomposer's auxiliary variables; it is not used on whole, un-decomposed
// constraints.
func (v *NormCSPVars) GetDomainLinearSum(sum *LinearSum) domain.Domain {
	acc := []arith.CheckedInt{sum.Constant}
	for _, t := range sum.Terms() {
		d := v.IntVar(t.Var).Domain()
		scaled := make([]arith.CheckedInt, d.Len())
		for i := 0; i < d.Len(); i++ {
			scaled[i] = d.At(i).Mul(t.Coef)
		}
		acc = minkowskiSum(acc, scaled)
	}
	return domain.NewFromUnsorted(acc)
}

func minkowskiSum(a, b []arith.CheckedInt) []arith.CheckedInt {
	out := make([]arith.CheckedInt, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, x.Add(y))
		}
	}
	return out
}

// NormCSP is the full normalized problem: variables plus the two pending
// constraint queues the encoder drains. NumEncodedVars is a watermark: the
// encoder is idempotent across repeated calls on the same structures
// because it only encodes IntVar handles at or above this watermark.
type NormCSP struct {
	Vars             *NormCSPVars
	Constraints      []Constraint
	ExtraConstraints []ExtraConstraint
	NumEncodedVars   int
}

// NewNormCSP returns an empty normalized CSP bound to vars.
func NewNormCSP(vars *NormCSPVars) *NormCSP {
	return &NormCSP{Vars: vars}
}

// UnencodedIntVars returns the handles of all IntVars allocated at or after
// the NumEncodedVars watermark.
func (n *NormCSP) UnencodedIntVars() []IntVar {
	total := n.Vars.NumIntVars()
	if n.NumEncodedVars >= total {
		return nil
	}
	out := make([]IntVar, 0, total-n.NumEncodedVars)
	for i := n.NumEncodedVars; i < total; i++ {
		out = append(out, IntVar(i))
	}
	return out
}

// DrainConstraints removes and returns all pending (boolean/linear)
// constraints.
func (n *NormCSP) DrainConstraints() []Constraint {
	cs := n.Constraints
	n.Constraints = nil
	return cs
}

// DrainExtraConstraints removes and returns all pending extra constraints.
func (n *NormCSP) DrainExtraConstraints() []ExtraConstraint {
	cs := n.ExtraConstraints
	n.ExtraConstraints = nil
	return cs
}
