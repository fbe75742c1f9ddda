package encoder

import (
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/sat"
)

// env groups the five collaborators every encoding function
// threads through: the normalized CSP, the SAT instance under
// construction, the encode map, the config, and the diagnostic tracer.
// Grouping them mirrors the original encoder's own environment struct; Go
// makes this an unexported struct instead of five parallel parameters,
// the same way the surrounding ecosystem's solver package groups its own
// circuit/lit-mapping pair rather than passing each separately.
type env struct {
	norm   *csp.NormCSP
	sat    *sat.SAT
	m      *EncodeMap
	cfg    *csp.Config
	tracer Tracer

	constFalse *sat.Lit
	constTrue  *sat.Lit
}

// falseLit returns a SAT literal permanently forced false, allocating and
// pinning one the first time it is needed.
func (e *env) falseLit() sat.Lit {
	if e.constFalse == nil {
		l := e.sat.NewVar()
		e.sat.AddClause([]sat.Lit{l.Not()})
		e.constFalse = &l
	}
	return *e.constFalse
}

// trueLit returns a SAT literal permanently forced true.
func (e *env) trueLit() sat.Lit {
	if e.constTrue == nil {
		l := e.sat.NewVar()
		e.sat.AddClause([]sat.Lit{l})
		e.constTrue = &l
	}
	return *e.constTrue
}
