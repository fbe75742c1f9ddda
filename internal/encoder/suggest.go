package encoder

import "github.com/csp-sat/encoder/internal/csp"

// EncoderKind is the algorithm suggestEncoder selects for one linear
// literal (§4.4).
type EncoderKind int

const (
	DirectSimple EncoderKind = iota
	DirectEqNe
	MixedGe
	Log
)

func (k EncoderKind) String() string {
	switch k {
	case DirectSimple:
		return "direct-simple"
	case DirectEqNe:
		return "direct-eq-ne"
	case MixedGe:
		return "mixed-ge"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}

// suggestEncoder picks the encoding strategy for lit, assuming every
// variable it mentions is already encoded (§4.4).
func suggestEncoder(env *env, lit csp.LinearLit) EncoderKind {
	terms := lit.Sum.Terms()
	if len(terms) == 1 && env.m.getEncoding(terms[0].Var).kind == KindDirect {
		return DirectSimple
	}
	if (lit.Op == csp.Eq || lit.Op == csp.Ne) && allKind(env, terms, KindDirect) {
		return DirectEqNe
	}
	if allKindIn(env, terms, KindOrder, KindDirect) {
		return MixedGe
	}
	if allKind(env, terms, KindLog) {
		return Log
	}
	fail("suggestEncoder: no applicable rule for literal %s", lit)
	panic("unreachable")
}

func allKind(env *env, terms []csp.LinearTerm, kind EncodingKind) bool {
	for _, t := range terms {
		if env.m.getEncoding(t.Var).kind != kind {
			return false
		}
	}
	return true
}

func allKindIn(env *env, terms []csp.LinearTerm, kinds ...EncodingKind) bool {
	for _, t := range terms {
		k := env.m.getEncoding(t.Var).kind
		ok := false
		for _, want := range kinds {
			if k == want {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
