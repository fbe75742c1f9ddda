package encoder

import (
	"testing"

	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/domain"
	"github.com/csp-sat/encoder/internal/sat"
	"github.com/stretchr/testify/require"
)

func TestEncodeMapBoolVarBindsOnce(t *testing.T) {
	m := NewEncodeMap()
	s := sat.New()
	bv := csp.BoolVar(1)
	lit := m.convertBoolLit(s, csp.BoolLit{Var: bv})
	again := m.convertBoolLit(s, csp.BoolLit{Var: bv, Negated: true})
	require.Equal(t, lit.Not(), again)
}

func TestEncodeMapSetIntVarPanicsOnDoubleBind(t *testing.T) {
	m := NewEncodeMap()
	vars := csp.NewNormCSPVars()
	v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(0, 1)})
	enc := newDirectEncoding(domain.Range(0, 1), nil)
	m.setIntVar(v, enc)
	require.Panics(t, func() { m.setIntVar(v, enc) })
}

func TestEncodeMapGetIntValueUnencodedIsFalse(t *testing.T) {
	m := NewEncodeMap()
	vars := csp.NewNormCSPVars()
	v := vars.NewIntVar(csp.DomainRepresentation{D: domain.Range(0, 1)})
	_, ok := m.GetIntValue(nil, v)
	require.False(t, ok)
}
