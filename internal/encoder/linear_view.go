package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/csp"
)

// linearLitView is a read-only unpacking of a csp.LinearLit used throughout
// the five linear-constraint encoders, so they deal in plain slices/values
// rather than repeatedly calling into csp.LinearSum's accessors.
type linearLitView struct {
	terms    []csp.LinearTerm
	constant arith.CheckedInt
	op       csp.CmpOp
}

func viewOf(lit csp.LinearLit) linearLitView {
	return linearLitView{terms: lit.Sum.Terms(), constant: lit.Sum.Constant, op: lit.Op}
}
