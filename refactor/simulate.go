package refactor

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// simulate evaluates n's cone bit-parallel over every assignment of
// leaves, returning the resulting 2^len(leaves)-bit truth table packed
// as ttable-style words, one bit per minterm, leaf i occupying bit i of
// the minterm index (spec.md §4.9 step 3).
func simulate(g *aig.Graph, n aig.ID, leaves []aig.ID) []uint64 {
	nVars := uint(len(leaves))
	words := make([]uint64, ttable.NumWords(nVars))

	memo := make(map[aig.ID][]uint64, len(leaves))
	for i, l := range leaves {
		memo[l] = projWords(i, nVars)
	}

	var eval func(idx aig.ID) []uint64
	eval = func(idx aig.ID) []uint64 {
		if w, ok := memo[idx]; ok {
			return w
		}
		if g.IsConst(idx) {
			w := make([]uint64, ttable.NumWords(nVars))
			memo[idx] = w
			return w
		}
		c0, c1 := g.Children(idx)
		a := copyWords(eval(c0.Index()))
		if c0.IsComplement() {
			notInPlace(a, nVars)
		}
		b := eval(c1.Index())
		for i := range a {
			if c1.IsComplement() {
				a[i] &^= b[i]
			} else {
				a[i] &= b[i]
			}
		}
		memo[idx] = a
		return a
	}

	root := eval(n)
	copy(words, root)
	return words
}

// projWords returns the nVars-bit truth table of the i-th projection
// variable (f(x) = x_i): bit m set iff bit i of m is 1.
func projWords(i int, nVars uint) []uint64 {
	words := make([]uint64, ttable.NumWords(nVars))
	total := 1 << nVars
	for m := 0; m < total; m++ {
		if m&(1<<uint(i)) != 0 {
			setBit(words, m)
		}
	}
	return words
}

func copyWords(w []uint64) []uint64 {
	out := make([]uint64, len(w))
	copy(out, w)
	return out
}

// notInPlace complements the low 2^nVars bits of w; when those end inside
// a word, that word's padding bits above them are cleared.
func notInPlace(w []uint64, nVars uint) {
	total := uint(1) << nVars
	fullWords := total / 64
	var i uint
	for ; i < fullWords; i++ {
		w[i] = ^w[i]
	}
	if rem := total % 64; rem != 0 {
		mask := (uint64(1) << rem) - 1
		w[i] = (^w[i]) & mask
	}
}

func getBit(words []uint64, i int) bool {
	return words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

func setBit(words []uint64, i int) {
	words[i/64] |= uint64(1) << uint(i%64)
}
