package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/sat"
)

// EncodeMap is the persistent binding from normalized-CSP variables to SAT
// literals/encodings: BoolVar -> Lit, and IntVar -> exactly one of the
// three encodings. Entries are add-once and immutable thereafter, same as
// the entries of the surrounding ecosystem's own litMapping.
type EncodeMap struct {
	boolVars map[csp.BoolVar]sat.Lit
	intVars  map[csp.IntVar]encoding
}

// NewEncodeMap returns an empty EncodeMap.
func NewEncodeMap() *EncodeMap {
	return &EncodeMap{
		boolVars: make(map[csp.BoolVar]sat.Lit),
		intVars:  make(map[csp.IntVar]encoding),
	}
}

// setBoolVar binds v to lit, once. A second bind for the same v is an
// internal error.
func (m *EncodeMap) setBoolVar(v csp.BoolVar, lit sat.Lit) {
	if _, ok := m.boolVars[v]; ok {
		fail("EncodeMap: bool var %d already bound", v)
	}
	m.boolVars[v] = lit
}

// setIntVar binds v to enc, once.
func (m *EncodeMap) setIntVar(v csp.IntVar, enc encoding) {
	if _, ok := m.intVars[v]; ok {
		fail("EncodeMap: int var %d already bound", v)
	}
	m.intVars[v] = enc
}

// GetBoolVar returns the SAT literal bound to v, if any.
func (m *EncodeMap) GetBoolVar(v csp.BoolVar) (sat.Lit, bool) {
	l, ok := m.boolVars[v]
	return l, ok
}

// GetBoolLit returns the SAT literal for a Boolean CSP literal, applying
// its polarity.
func (m *EncodeMap) GetBoolLit(l csp.BoolLit) (sat.Lit, bool) {
	base, ok := m.GetBoolVar(l.Var)
	if !ok {
		return sat.Lit(0), false
	}
	if l.Negated {
		return base.Not(), true
	}
	return base, true
}

// convertBoolLit converts l to a SAT literal, allocating a fresh SAT
// variable for l.Var if it has not been bound yet.
func (m *EncodeMap) convertBoolLit(s *sat.SAT, l csp.BoolLit) sat.Lit {
	base, ok := m.GetBoolVar(l.Var)
	if !ok {
		base = s.NewVar()
		m.setBoolVar(l.Var, base)
	}
	if l.Negated {
		return base.Not()
	}
	return base
}

// getEncoding returns the encoding bound to v, failing if v is unencoded.
func (m *EncodeMap) getEncoding(v csp.IntVar) encoding {
	enc, ok := m.intVars[v]
	if !ok {
		fail("EncodeMap: int var %d reached during encoding with no bound encoding", v)
	}
	return enc
}

// hasIntVar reports whether v is already encoded.
func (m *EncodeMap) hasIntVar(v csp.IntVar) bool {
	_, ok := m.intVars[v]
	return ok
}

// GetIntValue decodes v's value from a satisfying model. Returns
// (0, false) if v was never encoded.
func (m *EncodeMap) GetIntValue(model *sat.Model, v csp.IntVar) (int32, bool) {
	ci, ok := m.GetIntValueChecked(model, v)
	if !ok {
		return 0, false
	}
	return ci.Int32(), true
}

// GetIntValueChecked is GetIntValue's CheckedInt-returning form, used
// wherever a decoded value feeds back into checked arithmetic (e.g. an
// oracle re-validating a Mul constraint).
func (m *EncodeMap) GetIntValueChecked(model *sat.Model, v csp.IntVar) (arith.CheckedInt, bool) {
	enc, ok := m.intVars[v]
	if !ok {
		return 0, false
	}
	return decodeEncoding(model, enc), true
}
