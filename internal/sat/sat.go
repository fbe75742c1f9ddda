// Package sat is the boundary the encoder emits into: a thin wrapper
// around github.com/go-air/gini exposing exactly the primitives the
// encoder consumes (fresh literals, clause insertion, a native
// order-encoding-linear primitive, and an active-vertices-connected
// passthrough), the same way the surrounding ecosystem's solver package
// wraps gini behind its own litMapping/constraint boundary rather than
// calling the library directly from constraint-encoding code.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Lit is a SAT literal. It is a direct alias of gini's z.Lit so callers can
// use z.Lit's Not/Var/IsPos methods without a conversion.
type Lit = z.Lit

// ConnectivityConstraint records one AddActiveVerticesConnected call. The
// connectivity solver itself is out of scope for this module (see
// DESIGN.md); the SAT boundary only needs to remember the call was made so
// a future connectivity backend has somewhere to plug in.
type ConnectivityConstraint struct {
	Lits  []Lit
	Edges [][2]int
}

// SAT is the mutable SAT-instance-under-construction that the encoder
// drains constraints into.
type SAT struct {
	g            *gini.Gini
	numVars      int
	connectivity []ConnectivityConstraint
}

// New returns an empty SAT instance.
func New() *SAT {
	return &SAT{g: gini.New()}
}

// NewVar allocates a fresh SAT variable and returns its positive literal.
func (s *SAT) NewVar() Lit {
	v := s.g.NewVar()
	s.numVars++
	return v.Pos()
}

// NewVarsAsLits allocates n fresh variables and returns their positive
// literals.
func (s *SAT) NewVarsAsLits(n int) []Lit {
	out := make([]Lit, n)
	for i := range out {
		out[i] = s.NewVar()
	}
	return out
}

// AddClause asserts the disjunction of lits.
func (s *SAT) AddClause(lits []Lit) {
	for _, l := range lits {
		s.g.Add(l)
	}
	s.g.Add(z.LitNull)
}

// AddActiveVerticesConnected forwards a connectivity constraint verbatim;
// per this module's scope it is recorded but not solved (see DESIGN.md).
func (s *SAT) AddActiveVerticesConnected(lits []Lit, edges [][2]int) {
	s.connectivity = append(s.connectivity, ConnectivityConstraint{Lits: lits, Edges: edges})
}

// Connectivity returns every AddActiveVerticesConnected call recorded so
// far, for tests and future connectivity backends to inspect.
func (s *SAT) Connectivity() []ConnectivityConstraint {
	return s.connectivity
}

// NumVars reports how many SAT variables have been allocated.
func (s *SAT) NumVars() int { return s.numVars }

// Solve runs the underlying SAT solver, returning true iff satisfiable.
func (s *SAT) Solve() bool {
	return s.g.Solve() == 1
}

// Model is a satisfying assignment, used by the encoder's decode routines.
type Model struct {
	s *SAT
}

// Model returns the current satisfying assignment. Callers must only call
// this after Solve returned true.
func (s *SAT) Model() *Model {
	return &Model{s: s}
}

// Value reports the truth value assigned to l in the model.
func (m *Model) Value(l Lit) bool {
	return m.s.g.Value(l)
}
