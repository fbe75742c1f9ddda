package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/domain"
	"github.com/csp-sat/encoder/internal/sat"
)

// EncodingKind identifies which of the three integer encodings a variable
// received.
type EncodingKind int

const (
	// KindOrder: lits[i] <=> value >= domain[i+1].
	KindOrder EncodingKind = iota
	// KindDirect: lits[i] <=> value == domain[i].
	KindDirect
	// KindLog: value = sum 2^i * lits[i].
	KindLog
)

func (k EncodingKind) String() string {
	switch k {
	case KindOrder:
		return "order"
	case KindDirect:
		return "direct"
	case KindLog:
		return "log"
	default:
		return "unknown"
	}
}

// encoding is the one-of-three internal storage for an encoded integer
// variable, per the "closed tagged union, single storage" design note:
// exactly one of order/direct/log is populated, selected by kind, so a
// caller can never observe two encodings disagreeing for the same
// variable.
type encoding struct {
	kind   EncodingKind
	order  *orderEncoding
	direct *directEncoding
	log    *logEncoding
}

// orderEncoding stores lits[i] <=> value >= d.At(i+1).
type orderEncoding struct {
	d    domain.Domain
	lits []sat.Lit
}

// directEncoding stores lits[i] <=> value == d.At(i).
type directEncoding struct {
	d    domain.Domain
	lits []sat.Lit
}

// logEncoding stores bit literals plus the exact [low, high] range the bit
// pattern is constrained to.
type logEncoding struct {
	bits  []sat.Lit
	low   arith.CheckedInt
	high  arith.CheckedInt
}

func newOrderEncoding(d domain.Domain, lits []sat.Lit) encoding {
	return encoding{kind: KindOrder, order: &orderEncoding{d: d, lits: lits}}
}

func newDirectEncoding(d domain.Domain, lits []sat.Lit) encoding {
	return encoding{kind: KindDirect, direct: &directEncoding{d: d, lits: lits}}
}

func newLogEncoding(bits []sat.Lit, low, high arith.CheckedInt) encoding {
	return encoding{kind: KindLog, log: &logEncoding{bits: bits, low: low, high: high}}
}

// Range returns the encoding's value range, regardless of kind.
func (e encoding) Range() arith.Range {
	switch e.kind {
	case KindOrder:
		return e.order.d.AsRange()
	case KindDirect:
		return e.direct.d.AsRange()
	case KindLog:
		return arith.NewRange(e.log.low, e.log.high)
	default:
		fail("encoding.Range: unset encoding kind")
		panic("unreachable")
	}
}

// NumBits returns the bit width of a log encoding. Fails for any other
// kind.
func (e encoding) NumBits() int {
	if e.kind != KindLog {
		fail("encoding.NumBits: not a log encoding")
	}
	return len(e.log.bits)
}
