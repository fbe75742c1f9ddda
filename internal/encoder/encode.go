package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/csp-sat/encoder/internal/sat"
)

// Encode is the top-level entry point (§4.3): it encodes every
// yet-unencoded integer variable, drains the pending (boolean/linear) and
// extra constraint queues into SAT clauses, and advances the
// NumEncodedVars watermark. It is idempotent across repeated calls on the
// same NormCSP/SAT/EncodeMap, since it only ever touches variables at or
// above the watermark.
func Encode(norm *csp.NormCSP, s *sat.SAT, m *EncodeMap, cfg *csp.Config, tracer Tracer) {
	if tracer == nil {
		tracer = DefaultTracer{}
	}
	e := &env{norm: norm, sat: s, m: m, cfg: cfg, tracer: tracer}

	candidates := computeCandidateDirectSet(e)
	for _, v := range norm.UnencodedIntVars() {
		switch {
		case cfg.ForceUseLogEncoding:
			encodeIntVarLog(e, v)
		case candidates[v]:
			encodeIntVarDirect(e, v)
		default:
			encodeIntVarOrder(e, v)
		}
	}

	for _, c := range norm.DrainConstraints() {
		encodeConstraint(e, c)
	}
	for _, ec := range norm.DrainExtraConstraints() {
		switch c := ec.(type) {
		case csp.MulConstraint:
			encodeMul(e, c)
		case csp.ActiveVerticesConnectedConstraint:
			lits := make([]sat.Lit, len(c.Vertices))
			for i, bl := range c.Vertices {
				lits[i] = e.m.convertBoolLit(e.sat, bl)
			}
			e.sat.AddActiveVerticesConnected(lits, c.Edges)
		default:
			fail("Encode: unknown extra constraint type %T", ec)
		}
	}

	norm.NumEncodedVars = norm.Vars.NumIntVars()
}

// computeCandidateDirectSet implements §4.3 step 1: start from every
// yet-unencoded variable (Binary ones only when configured), then drop any
// variable that appears in a linear literal whose operator isn't Eq/Ne or
// whose term count exceeds 2 ("non-simple").
func computeCandidateDirectSet(e *env) map[csp.IntVar]bool {
	candidates := make(map[csp.IntVar]bool)
	if !e.cfg.UseDirectEncoding {
		return candidates
	}
	for _, v := range e.norm.UnencodedIntVars() {
		repr := e.norm.Vars.IntVar(v)
		if csp.IsBinary(repr) && !e.cfg.DirectEncodingForBinaryVars {
			continue
		}
		candidates[v] = true
	}
	for _, c := range e.norm.Constraints {
		for _, lit := range c.LinearLits {
			simple := (lit.Op == csp.Eq || lit.Op == csp.Ne) && lit.Sum.Len() <= 2
			if simple {
				continue
			}
			for _, t := range lit.Sum.Terms() {
				delete(candidates, t.Var)
			}
		}
	}
	return candidates
}

// taggedLit pairs a surviving linear literal with the subtype-specific
// encoder it must use, since decomposition may rewrite the literal (e.g.
// normalizing to Ge) in a way suggestEncoder alone can no longer recover.
type taggedLit struct {
	lit  csp.LinearLit
	kind EncoderKind
}

// encodeConstraint implements §4.3's encode-constraint, Steps A-C.
func encodeConstraint(env *env, c csp.Constraint) {
	bs := make([]sat.Lit, 0, len(c.BoolLits))
	for _, bl := range c.BoolLits {
		bs = append(bs, env.m.convertBoolLit(env.sat, bl))
	}

	if len(c.LinearLits) == 0 {
		env.sat.AddClause(bs)
		return
	}

	// Step A: drop range-unsatisfiable literals.
	var survivors []csp.LinearLit
	for _, lit := range c.LinearLits {
		r := sumRange(env, lit.Sum)
		if isUnsatisfiableLinear(r, lit.Op) {
			continue
		}
		if lit.Sum.Len() == 0 {
			// A constant-only literal that passed the range check always
			// holds, so the whole constraint is trivially true.
			return
		}
		survivors = append(survivors, lit)
	}

	// Step B: simplify each survivor into one or more conjunction groups.
	var groups [][]taggedLit
	for _, lit := range survivors {
		kind := suggestEncoder(env, lit)
		switch kind {
		case MixedGe:
			groups = append(groups, simplifyMixedGe(env, lit)...)
		case DirectSimple:
			groups = append(groups, []taggedLit{{lit: lit, kind: DirectSimple}})
		case DirectEqNe:
			decomposed := decomposeLinearLit(env, lit, KindDirect)
			group := make([]taggedLit, len(decomposed))
			for i, d := range decomposed {
				group[i] = taggedLit{lit: d, kind: DirectEqNe}
			}
			groups = append(groups, group)
		case Log:
			normalized := normalizeLogLit(lit)
			decomposed := decomposeLinearLitLog(env, normalized)
			group := make([]taggedLit, len(decomposed))
			for i, d := range decomposed {
				group[i] = taggedLit{lit: d, kind: Log}
			}
			groups = append(groups, group)
		}
	}

	emitDisjunction(env, bs, groups)
}

// simplifyMixedGe implements §4.3 Step B's MixedGe branch: Ne splits into
// two independent Ge alternatives (two groups); Eq rewrites to two Ge
// literals that must both hold (one group, two decompositions
// concatenated); Le/Lt/Gt rewrite to a single Ge literal (one group).
func simplifyMixedGe(env *env, lit csp.LinearLit) [][]taggedLit {
	tag := func(lits []csp.LinearLit) []taggedLit {
		out := make([]taggedLit, len(lits))
		for i, l := range lits {
			out[i] = taggedLit{lit: l, kind: MixedGe}
		}
		return out
	}

	switch lit.Op {
	case csp.Ne:
		negSum := lit.Sum.Negate()
		negSum.Constant = negSum.Constant.Add(arith.CheckedInt(-1))
		posSum := lit.Sum.Clone()
		posSum.Constant = posSum.Constant.Add(arith.CheckedInt(-1))
		return [][]taggedLit{
			tag(decomposeLinearLit(env, csp.NewLinearLit(negSum, csp.Ge), KindOrder)),
			tag(decomposeLinearLit(env, csp.NewLinearLit(posSum, csp.Ge), KindOrder)),
		}
	case csp.Eq:
		posSum := lit.Sum.Clone()
		negSum := lit.Sum.Negate()
		group := append(
			tag(decomposeLinearLit(env, csp.NewLinearLit(posSum, csp.Ge), KindOrder)),
			tag(decomposeLinearLit(env, csp.NewLinearLit(negSum, csp.Ge), KindOrder))...,
		)
		return [][]taggedLit{group}
	default:
		return [][]taggedLit{tag(decomposeLinearLit(env, rewriteToGe(lit), KindOrder))}
	}
}

// rewriteToGe rewrites a Le/Lt/Ge/Gt literal into Ge form (§4.3 Step B).
func rewriteToGe(lit csp.LinearLit) csp.LinearLit {
	switch lit.Op {
	case csp.Ge:
		return lit
	case csp.Le:
		return csp.NewLinearLit(lit.Sum.Negate(), csp.Ge)
	case csp.Lt:
		s := lit.Sum.Negate()
		s.Constant = s.Constant.Add(arith.CheckedInt(-1))
		return csp.NewLinearLit(s, csp.Ge)
	case csp.Gt:
		s := lit.Sum.Clone()
		s.Constant = s.Constant.Add(arith.CheckedInt(-1))
		return csp.NewLinearLit(s, csp.Ge)
	default:
		fail("rewriteToGe: unexpected comparator %v", lit.Op)
		panic("unreachable")
	}
}

// normalizeLogLit normalizes a log literal's comparator to Eq/Ne/Ge (§4.3
// Step B's Log branch): Le/Lt/Gt rewrite via negation, Eq/Ne/Ge pass
// through.
func normalizeLogLit(lit csp.LinearLit) csp.LinearLit {
	switch lit.Op {
	case csp.Eq, csp.Ne, csp.Ge:
		return lit
	default:
		return rewriteToGe(lit)
	}
}

// encodeLiteralClauses dispatches a tagged literal to its subtype-specific
// encoder, returning the clause set asserting it holds.
func encodeLiteralClauses(env *env, t taggedLit) *clauseSet {
	switch t.kind {
	case DirectSimple:
		if cs := encodeLinearLitDirectSimple(env, viewOf(t.lit)); cs != nil {
			return cs
		}
		return newClauseSet() // trivially true: no clauses

	case MixedGe:
		return encodeLinearLitMixedGe(env, viewOf(t.lit))
	case DirectEqNe:
		if t.lit.Op == csp.Ne {
			return encodeLinearLitDirectNe(env, viewOf(t.lit))
		}
		return encodeLinearLitDirectEq(env, viewOf(t.lit))
	case Log:
		return encodeLinearLitLog(env, viewOf(t.lit))
	default:
		fail("encodeLiteralClauses: unknown encoder kind %v", t.kind)
		panic("unreachable")
	}
}

// emitDisjunction implements §4.3 Step C: given Bs (already-converted
// boolean literals) and the per-literal conjunction groups produced by Step
// B, compute each group's combined clause set and emit the whole
// constraint, introducing channeling literals when more than one
// multi-clause group remains.
func emitDisjunction(env *env, bs []sat.Lit, groups [][]taggedLit) {
	if len(groups) == 1 && len(groups[0]) == 1 && len(bs) == 0 {
		t := groups[0][0]
		if t.kind == MixedGe && nativeApplicable(env, t.lit) {
			emitNativeOrderLinear(env, t.lit)
			return
		}
		cs := encodeLiteralClauses(env, t)
		for i := 0; i < cs.len(); i++ {
			env.sat.AddClause(cs.at(i))
		}
		return
	}

	var multi []*clauseSet
	for _, group := range groups {
		combined := newClauseSet()
		trivial := false
		for _, t := range group {
			cs := encodeLiteralClauses(env, t)
			if cs.len() == 0 {
				trivial = true
				break
			}
			combined.append(cs)
		}
		if trivial {
			// This Conj_i always holds: the whole constraint is trivially
			// true, nothing more needs emitting.
			return
		}
		switch combined.len() {
		case 0:
			continue
		case 1:
			bs = append(bs, combined.at(0)...)
		default:
			multi = append(multi, combined)
		}
	}

	if len(multi) == 0 {
		env.sat.AddClause(bs)
		return
	}
	if len(multi) == 1 {
		cs := multi[0]
		for i := 0; i < cs.len(); i++ {
			env.sat.AddClause(append(append([]sat.Lit{}, bs...), cs.at(i)...))
		}
		return
	}

	channelLits := make([]sat.Lit, len(multi))
	if len(multi) == 2 && len(bs) == 0 {
		v := env.sat.NewVar()
		channelLits[0] = v
		channelLits[1] = v.Not()
	} else {
		for i := range multi {
			channelLits[i] = env.sat.NewVar()
		}
	}
	extendedBs := append([]sat.Lit{}, bs...)
	for _, cl := range channelLits {
		extendedBs = append(extendedBs, cl.Not())
	}
	env.sat.AddClause(extendedBs)
	for i, cs := range multi {
		for j := 0; j < cs.len(); j++ {
			env.sat.AddClause(append(append([]sat.Lit{}, cs.at(j)...), channelLits[i]))
		}
	}
}

// nativeApplicable implements §4.5's Native Ge order-encoding applicability
// test: all terms order-encoded, term count within
// config.NativeLinearEncodingTerms, and domain-size product at or above
// config.NativeLinearEncodingDomainProductThreshold.
func nativeApplicable(env *env, lit csp.LinearLit) bool {
	if lit.Op != csp.Ge {
		return false
	}
	terms := lit.Sum.Terms()
	if len(terms) > env.cfg.NativeLinearEncodingTerms {
		return false
	}
	product := 1
	for _, t := range terms {
		enc := env.m.getEncoding(t.Var)
		if enc.kind != KindOrder {
			return false
		}
		product *= enc.order.d.Len()
	}
	return product >= env.cfg.NativeLinearEncodingDomainProductThreshold
}

// emitNativeOrderLinear forwards a single order-encoded Ge literal to the
// SAT engine's native primitive. Each term's coefficient is folded into its
// domain first (values scaled by the coefficient, reversed with negated
// literals when it is negative), so the primitive always receives ascending
// domains with coefficient 1.
func emitNativeOrderLinear(env *env, lit csp.LinearLit) {
	terms := lit.Sum.Terms()
	lits := make([][]sat.Lit, len(terms))
	domains := make([][]int32, len(terms))
	coefs := make([]int32, len(terms))
	for i, t := range terms {
		enc := env.m.getEncoding(t.Var).order
		mt := normalizeMixedTerm(false, enc.d.Values(), enc.lits, t.Coef)
		lits[i] = mt.lits
		domains[i] = make([]int32, len(mt.values))
		for j := range mt.values {
			domains[i][j] = mt.contributionAt(j).Int32()
		}
		coefs[i] = 1
	}
	env.sat.AddOrderEncodingLinear(lits, domains, coefs, lit.Sum.Constant.Int32())
}
