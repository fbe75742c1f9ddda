package encoder

import "github.com/csp-sat/encoder/internal/sat"

// defineGate allocates a fresh literal out and emits the full Tseitin
// truth table pinning out <=> f(inputs): one clause per input assignment,
// 2^len(inputs) clauses total. It is the building block for every
// auxiliary combinational gate the log encoder needs (adder sum/carry
// bits, XOR-difference bits, the Ge prefix-compare chain), since it is
// correct by construction regardless of how intricate f is.
func defineGate(env *env, inputs []sat.Lit, f func(vals []bool) bool) sat.Lit {
	out := env.sat.NewVar()
	n := len(inputs)
	vals := make([]bool, n)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		lits := make([]sat.Lit, 0, n+1)
		for i := 0; i < n; i++ {
			bit := (mask>>uint(i))&1 == 1
			vals[i] = bit
			if bit {
				lits = append(lits, inputs[i].Not())
			} else {
				lits = append(lits, inputs[i])
			}
		}
		if f(vals) {
			env.sat.AddClause(append(lits, out))
		} else {
			env.sat.AddClause(append(lits, out.Not()))
		}
	}
	return out
}

// halfAdder returns sum, carry for a+b.
func halfAdder(env *env, a, b sat.Lit) (sum, carry sat.Lit) {
	sum = defineGate(env, []sat.Lit{a, b}, func(v []bool) bool { return v[0] != v[1] })
	carry = defineGate(env, []sat.Lit{a, b}, func(v []bool) bool { return v[0] && v[1] })
	return
}

// fullAdder returns sum, carry for a+b+cin.
func fullAdder(env *env, a, b, cin sat.Lit) (sum, carry sat.Lit) {
	sum = defineGate(env, []sat.Lit{a, b, cin}, func(v []bool) bool {
		return v[0] != v[1] != v[2]
	})
	carry = defineGate(env, []sat.Lit{a, b, cin}, func(v []bool) bool {
		count := 0
		for _, x := range v {
			if x {
				count++
			}
		}
		return count >= 2
	})
	return
}
