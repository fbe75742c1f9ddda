package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/domain"
	"github.com/csp-sat/encoder/internal/sat"
)

// encodeIntVarOrder is idempotent: if v is already mapped it returns the
// existing encoding. Otherwise it allocates fresh literals and emits the
// order encoding's monotonicity clauses (§4.2).
func encodeIntVarOrder(env *env, v csp.IntVar) encoding {
	if enc, ok := env.m.intVars[v]; ok {
		return enc
	}
	repr := env.norm.Vars.IntVar(v)
	var enc encoding
	switch r := repr.(type) {
	case csp.BinaryRepresentation:
		lit := env.m.convertBoolLit(env.sat, r.Cond)
		enc = newOrderEncoding(domain.New([]arith.CheckedInt{r.F, r.T}), []sat.Lit{lit})
	case csp.DomainRepresentation:
		d := r.D
		n := d.Len() - 1
		if n < 0 {
			n = 0
		}
		lits := env.sat.NewVarsAsLits(n)
		for i := 1; i < len(lits); i++ {
			env.sat.AddClause([]sat.Lit{lits[i].Not(), lits[i-1]})
		}
		enc = newOrderEncoding(d, lits)
	default:
		fail("encodeIntVarOrder: unknown IntVarRepresentation")
	}
	env.m.setIntVar(v, enc)
	env.tracer.TraceIntVarEncoded(v, KindOrder)
	return enc
}

// encodeIntVarDirect is the direct-encoding counterpart of
// encodeIntVarOrder.
func encodeIntVarDirect(env *env, v csp.IntVar) encoding {
	if enc, ok := env.m.intVars[v]; ok {
		return enc
	}
	repr := env.norm.Vars.IntVar(v)
	var enc encoding
	switch r := repr.(type) {
	case csp.BinaryRepresentation:
		lit := env.m.convertBoolLit(env.sat, r.Cond)
		enc = newDirectEncoding(domain.New([]arith.CheckedInt{r.F, r.T}), []sat.Lit{lit.Not(), lit})
	case csp.DomainRepresentation:
		d := r.D
		lits := env.sat.NewVarsAsLits(d.Len())
		env.sat.AddClause(append([]sat.Lit{}, lits...)) // at-least-one
		for i := 0; i < len(lits); i++ {
			for j := i + 1; j < len(lits); j++ {
				env.sat.AddClause([]sat.Lit{lits[i].Not(), lits[j].Not()})
			}
		}
		enc = newDirectEncoding(d, lits)
	default:
		fail("encodeIntVarDirect: unknown IntVarRepresentation")
	}
	env.m.setIntVar(v, enc)
	env.tracer.TraceIntVarEncoded(v, KindDirect)
	return enc
}

// encodeIntVarLog is the log-encoding counterpart. Fails with an internal
// error (UnsupportedEncoding per §4.2) if the domain's lower bound is
// negative or the variable is Binary-represented.
func encodeIntVarLog(env *env, v csp.IntVar) encoding {
	if enc, ok := env.m.intVars[v]; ok {
		return enc
	}
	repr := env.norm.Vars.IntVar(v)
	if csp.IsBinary(repr) {
		fail("encodeIntVarLog: log encoding unsupported for Binary representation (var %d)", v)
	}
	d := repr.(csp.DomainRepresentation).D
	if d.Low() < 0 {
		fail("encodeIntVarLog: log encoding requires a nonnegative domain floor, got %d (var %d)", d.Low(), v)
	}
	n := bitsNeeded(int64(d.High()))
	bits := env.sat.NewVarsAsLits(n)
	low, high := d.Low(), d.High()

	emitBoundClauses(env, bits, int64(low), true)
	emitBoundClauses(env, bits, int64(high), false)
	emitGapClauses(env, bits, d)

	enc := newLogEncoding(bits, low, high)
	env.m.setIntVar(v, enc)
	env.tracer.TraceIntVarEncoded(v, KindLog)
	return enc
}

func bitsNeeded(high int64) int {
	if high <= 0 {
		return 1
	}
	n := 0
	for (int64(1) << uint(n)) <= high {
		n++
	}
	return n
}

// emitBoundClauses emits the lower- or upper-bound clauses of §4.2's log
// encoder: for each bit i whose value in bound disagrees with "free" (set
// for lower, clear for upper), require that if every higher bit matches
// bound exactly, bit i takes bound's value.
func emitBoundClauses(env *env, bits []sat.Lit, bound int64, lower bool) {
	for i := 0; i < len(bits); i++ {
		boundBit := (bound>>uint(i))&1 == 1
		wantForced := boundBit
		if !lower {
			wantForced = !boundBit
		}
		if !wantForced {
			continue
		}
		clause := make([]sat.Lit, 0, len(bits)-i)
		for j := i + 1; j < len(bits); j++ {
			hBit := (bound>>uint(j))&1 == 1
			if hBit {
				clause = append(clause, bits[j].Not())
			} else {
				clause = append(clause, bits[j])
			}
		}
		if lower {
			clause = append(clause, bits[i])
		} else {
			clause = append(clause, bits[i].Not())
		}
		env.sat.AddClause(clause)
	}
}

// emitGapClauses forbids every integer strictly between consecutive domain
// values, since a sparse Domain may skip values within its [low, high]
// span.
func emitGapClauses(env *env, bits []sat.Lit, d domain.Domain) {
	for k := 1; k < d.Len(); k++ {
		lo, hi := d.At(k-1), d.At(k)
		for g := lo + 1; g < hi; g++ {
			clause := make([]sat.Lit, 0, len(bits))
			for i := 0; i < len(bits); i++ {
				gBit := (int64(g)>>uint(i))&1 == 1
				if gBit {
					clause = append(clause, bits[i].Not())
				} else {
					clause = append(clause, bits[i])
				}
			}
			env.sat.AddClause(clause)
		}
	}
}
