package encoder

import (
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/sat"
)

// andGate defines out <=> a && b with the minimal 3-clause Tseitin
// encoding (§4.7), rather than defineGate's general 2^n-clause form.
func andGate(env *env, a, b sat.Lit) sat.Lit {
	out := env.sat.NewVar()
	env.sat.AddClause([]sat.Lit{out.Not(), a})
	env.sat.AddClause([]sat.Lit{out.Not(), b})
	env.sat.AddClause([]sat.Lit{a.Not(), b.Not(), out})
	return out
}

// encodeMul encodes x*y = m (§4.7). All three variables must already be
// log-encoded. It builds the partial-product matrix, sums it through the
// same weighted-bit adder the log linear encoder uses, and equates the
// result bit-for-bit with m's own bits; any adder bit beyond m's width is
// thereby forced false, the overflow guard the modeler is responsible for
// making room for.
func encodeMul(env *env, c csp.MulConstraint) {
	xEnc := env.m.getEncoding(c.X).log
	yEnc := env.m.getEncoding(c.Y).log
	mEnc := env.m.getEncoding(c.M).log
	if xEnc == nil || yEnc == nil || mEnc == nil {
		fail("encodeMul: all three variables of a Mul constraint must be log-encoded")
	}

	var entries []weightedLit
	for i, xi := range xEnc.bits {
		for j, yj := range yEnc.bits {
			p := andGate(env, xi, yj)
			entries = append(entries, weightedLit{offset: i + j, lit: p})
		}
	}
	sumBits := addWeightedBits(env, entries)

	length := len(sumBits)
	if len(mEnc.bits) > length {
		length = len(mEnc.bits)
	}
	for i := 0; i < length; i++ {
		si := bitAt(env, sumBits, i)
		mi := bitAt(env, mEnc.bits, i)
		env.sat.AddClause([]sat.Lit{si.Not(), mi})
		env.sat.AddClause([]sat.Lit{si, mi.Not()})
	}
}
