package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/sat"
)

// decodeEncoding recovers the integer value a satisfying model assigns to
// one encoded integer variable, per §4.8: a scan for the highest true
// literal for order, the unique true literal for direct, bit
// reconstruction for log. Violations of
// the exactly-one postcondition (direct) are fatal, matching the encoder's
// failure semantics.
func decodeEncoding(model *sat.Model, e encoding) arith.CheckedInt {
	switch e.kind {
	case KindOrder:
		return decodeOrder(model, e.order)
	case KindDirect:
		return decodeDirect(model, e.direct)
	case KindLog:
		return decodeLog(model, e.log)
	default:
		fail("decodeEncoding: unset encoding kind")
		panic("unreachable")
	}
}

// decodeOrder scans from the top for the largest j with lits[j] true.
// lits[j] true means value >= domain[j+1], so the decoded value is
// domain[j+1] when some lits[j] holds, else domain[0].
func decodeOrder(model *sat.Model, e *orderEncoding) arith.CheckedInt {
	best := 0
	for j := len(e.lits) - 1; j >= 0; j-- {
		if model.Value(e.lits[j]) {
			best = j + 1
			break
		}
	}
	return e.d.At(best)
}

func decodeDirect(model *sat.Model, e *directEncoding) arith.CheckedInt {
	found := -1
	for i, l := range e.lits {
		if model.Value(l) {
			if found != -1 {
				fail("decodeDirect: more than one literal true (indices %d and %d)", found, i)
			}
			found = i
		}
	}
	if found == -1 {
		fail("decodeDirect: exactly-one postcondition violated, no literal true")
	}
	return e.d.At(found)
}

func decodeLog(model *sat.Model, e *logEncoding) arith.CheckedInt {
	var value int64
	for i, l := range e.bits {
		if model.Value(l) {
			value += int64(1) << uint(i)
		}
	}
	v := arith.CheckedInt(int32(value))
	if !arith.NewRange(e.low, e.high).Contains(v) {
		fail("decodeLog: decoded value %d outside stored range [%d, %d]", v, e.low, e.high)
	}
	return v
}
