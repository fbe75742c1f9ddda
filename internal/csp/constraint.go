package csp

// Constraint is a disjunction of Boolean literals and linear literals,
// satisfied when any disjunct holds.
type Constraint struct {
	BoolLits   []BoolLit
	LinearLits []LinearLit
}

// NewConstraint builds a constraint from its disjuncts.
func NewConstraint(boolLits []BoolLit, linearLits []LinearLit) Constraint {
	return Constraint{BoolLits: boolLits, LinearLits: linearLits}
}

// ExtraConstraint is the closed tagged union of non-clausal constraint
// kinds. Like IntVarRepresentation it uses an unexported marker method to
// keep the union closed to this package.
type ExtraConstraint interface {
	isExtraConstraint()
}

// MulConstraint asserts X * Y = M. All three variables must be log-encoded
// by the time the encoder reaches it.
type MulConstraint struct {
	X, Y, M IntVar
}

func (MulConstraint) isExtraConstraint() {}

// ActiveVerticesConnectedConstraint is forwarded verbatim to the SAT engine;
// the encoder does not interpret it beyond passthrough.
type ActiveVerticesConnectedConstraint struct {
	Vertices []BoolLit
	Edges    [][2]int
}

func (ActiveVerticesConnectedConstraint) isExtraConstraint() {}
