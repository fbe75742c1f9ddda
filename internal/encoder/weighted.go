package encoder

import (
	"github.com/csp-sat/encoder/internal/arith"
	"github.com/csp-sat/encoder/internal/sat"
)

// weightedLit is one bit-weighted literal entry: the contribution to a sum
// is 2^offset if lit is true, else 0. Multiple entries may share an
// offset; addWeightedBits reduces them into a single binary bit vector.
type weightedLit struct {
	offset int
	lit    sat.Lit
}

// weightedBitsForTerm expands one log-encoded term's coefficient into a
// bit-weighted literal list: every set bit of |coef| shifts the term's own
// bit vector up by that bit's position (§4.5 "Log linear").
func weightedBitsForTerm(enc *logEncoding, coef arith.CheckedInt) []weightedLit {
	mag := coef
	if mag < 0 {
		mag = mag.Neg()
	}
	var entries []weightedLit
	for bitPos := 0; (int64(1) << uint(bitPos)) <= int64(mag); bitPos++ {
		if (int64(mag)>>uint(bitPos))&1 == 0 {
			continue
		}
		for i, lit := range enc.bits {
			entries = append(entries, weightedLit{offset: bitPos + i, lit: lit})
		}
	}
	return entries
}

// constEntries expands a nonnegative constant into bit-weighted entries
// against the permanently-true literal.
func constEntries(env *env, v arith.CheckedInt) []weightedLit {
	var entries []weightedLit
	for bitPos := 0; (int64(1) << uint(bitPos)) <= int64(v); bitPos++ {
		if (int64(v)>>uint(bitPos))&1 == 1 {
			entries = append(entries, weightedLit{offset: bitPos, lit: env.trueLit()})
		}
	}
	return entries
}

// addWeightedBits reduces a bit-weighted literal list into the binary
// representation of their sum: result[i] is the i-th bit of
// sum(2^offset for every true entry at that offset). Each position's
// bucket is reduced via a chain of full/half adders, ripple-carrying into
// the next position, the same carry-save technique a hardware multi-operand
// adder uses.
func addWeightedBits(env *env, entries []weightedLit) []sat.Lit {
	if len(entries) == 0 {
		return nil
	}
	maxOffset := 0
	for _, e := range entries {
		if e.offset > maxOffset {
			maxOffset = e.offset
		}
	}
	// Headroom for carries rippling past the highest input bit; bounded
	// since every value here fits in a 32-bit checked integer.
	width := maxOffset + 33
	buckets := make([][]sat.Lit, width)
	for _, e := range entries {
		buckets[e.offset] = append(buckets[e.offset], e.lit)
	}
	result := make([]sat.Lit, 0, width)
	for i := 0; i < width; i++ {
		bucket := buckets[i]
		for len(bucket) >= 3 {
			s, carry := fullAdder(env, bucket[0], bucket[1], bucket[2])
			bucket = append(bucket[3:], s)
			if i+1 < width {
				buckets[i+1] = append(buckets[i+1], carry)
			}
		}
		var bit sat.Lit
		switch len(bucket) {
		case 0:
			bit = env.falseLit()
		case 1:
			bit = bucket[0]
		case 2:
			s, carry := halfAdder(env, bucket[0], bucket[1])
			bit = s
			if i+1 < width {
				buckets[i+1] = append(buckets[i+1], carry)
			}
		}
		result = append(result, bit)
	}
	return result
}

// bitAt returns bits[i], or a constant false literal if i is out of range
// (the two operands of a comparison may have different bit-vector
// lengths).
func bitAt(env *env, bits []sat.Lit, i int) sat.Lit {
	if i < len(bits) {
		return bits[i]
	}
	return env.falseLit()
}
