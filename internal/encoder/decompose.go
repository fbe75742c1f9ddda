package encoder

import (
	"sort"

	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
)

// linkOpFor returns the comparator for a decomposer's linking equation:
// Ge when the original literal was Ge, Eq otherwise (§4.6). This applies
// uniformly to both the mixed and log decomposers.
func linkOpFor(op csp.CmpOp) csp.CmpOp {
	if op == csp.Ge {
		return csp.Ge
	}
	return csp.Eq
}

// decomposeLinearLit implements the mixed linear decomposer (§4.6): while
// the cumulative domain-size product of lit's terms exceeds
// config.DomainProductThreshold and more than two terms remain, it
// accumulates the smallest-domain terms (taken in order of a sort by domain
// size) into a fresh auxiliary variable, emits the linking literal, and
// continues on the residual sum. Returns a conjunction of literals: the
// linking literals plus the final residual literal, which is within
// threshold or has at most two terms. Linking literals are not checked
// against the threshold.
//
// auxKind selects the auxiliary variable's encoding: order for a MixedGe
// caller, direct for a DirectEqNe caller, so every surviving literal's terms
// stay within the encoding the chosen subtype-specific encoder requires.
func decomposeLinearLit(env *env, lit csp.LinearLit, auxKind EncodingKind) []csp.LinearLit {
	threshold := env.cfg.DomainProductThreshold
	sum := lit.Sum.Clone()
	op := lit.Op
	var result []csp.LinearLit

	for {
		terms := sum.Terms()
		if domainProduct(env, terms) <= threshold || len(terms) <= 2 {
			result = append(result, csp.NewLinearLit(sum, op))
			return result
		}

		ordered := append([]csp.LinearTerm{}, terms...)
		sort.Slice(ordered, func(i, j int) bool {
			return domainSizeOf(env, ordered[i].Var) < domainSizeOf(env, ordered[j].Var)
		})

		taken := make(map[csp.IntVar]bool)
		accumulated := csp.NewLinearSum(0)
		accProduct := 1
		for _, t := range ordered {
			dsize := domainSizeOf(env, t.Var)
			remaining := len(ordered) - len(taken)
			if len(taken) >= 2 && remaining >= 2 && accProduct*dsize > threshold {
				break
			}
			accumulated.Add(t.Var, t.Coef)
			taken[t.Var] = true
			accProduct *= dsize
		}

		auxDomain := env.norm.Vars.GetDomainLinearSum(accumulated)
		auxVar := env.norm.Vars.NewIntVar(csp.DomainRepresentation{D: auxDomain})
		if auxKind == KindDirect {
			encodeIntVarDirect(env, auxVar)
		} else {
			encodeIntVarOrder(env, auxVar)
		}
		env.tracer.TraceDecomposition(auxVar, false)

		linkSum := accumulated.Clone()
		linkSum.Add(auxVar, -1)
		result = append(result, csp.NewLinearLit(linkSum, linkOpFor(op)))

		newSum := csp.NewLinearSum(sum.Constant)
		for _, t := range terms {
			if !taken[t.Var] {
				newSum.Add(t.Var, t.Coef)
			}
		}
		newSum.Add(auxVar, 1)
		sum = newSum
	}
}

// decomposeLinearLitLog is the log decomposer (§4.6): while more than 6
// terms remain, it pops up to 6 terms from whichever of the
// positive/negative coefficient queues is larger, folds them into a fresh
// log-encoded auxiliary variable, and emits the linking literal.
func decomposeLinearLitLog(env *env, lit csp.LinearLit) []csp.LinearLit {
	const cap = 6
	sum := lit.Sum.Clone()
	op := lit.Op
	var result []csp.LinearLit

	for sum.Len() > cap {
		terms := sum.Terms()
		var pos, neg []csp.LinearTerm
		for _, t := range terms {
			if t.Coef >= 0 {
				pos = append(pos, t)
			} else {
				neg = append(neg, t)
			}
		}
		var chunk []csp.LinearTerm
		sign := arith.CheckedInt(1)
		if len(pos) >= len(neg) {
			chunk = takeUpTo(pos, cap)
		} else {
			chunk = takeUpTo(neg, cap)
			sign = -1
		}

		// accumulated holds the chunk with its sign folded out, so its
		// domain (and the auxiliary's) stays nonnegative for log encoding;
		// the auxiliary re-enters the residual sum with that sign.
		accumulated := csp.NewLinearSum(0)
		taken := make(map[csp.IntVar]bool)
		for _, t := range chunk {
			accumulated.Add(t.Var, t.Coef.Mul(sign))
			taken[t.Var] = true
		}

		auxDomain := env.norm.Vars.GetDomainLinearSum(accumulated)
		auxVar := env.norm.Vars.NewIntVar(csp.DomainRepresentation{D: auxDomain})
		encodeIntVarLog(env, auxVar)
		env.tracer.TraceDecomposition(auxVar, true)

		linkSum := accumulated.Clone()
		linkSum.Add(auxVar, -1)
		if sign < 0 {
			linkSum = linkSum.Negate()
		}
		result = append(result, csp.NewLinearLit(linkSum, linkOpFor(op)))

		newSum := csp.NewLinearSum(sum.Constant)
		for _, t := range terms {
			if !taken[t.Var] {
				newSum.Add(t.Var, t.Coef)
			}
		}
		newSum.Add(auxVar, sign)
		sum = newSum
	}

	result = append(result, csp.NewLinearLit(sum, op))
	return result
}

func takeUpTo(terms []csp.LinearTerm, n int) []csp.LinearTerm {
	if len(terms) <= n {
		return terms
	}
	return terms[:n]
}

func domainProduct(env *env, terms []csp.LinearTerm) int {
	product := 1
	for _, t := range terms {
		product *= domainSizeOf(env, t.Var)
		if product < 0 { // overflowed int; treat as "definitely over threshold"
			return product
		}
	}
	return product
}
