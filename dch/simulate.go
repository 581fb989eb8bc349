package dch

import (
	"math/rand"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

// simVectors holds one `words`-word random simulation bitvector per node,
// computed by propagating AND/INV under each node's natural (regular)
// polarity.
type simVectors struct {
	words int
	vec   [][]uint64
}

// simulate assigns each PI a random vector (bit 0 of word 0 cleared, the
// "all-zero row" of spec.md §4.6 step 1) and propagates AND in topological
// order.
func simulate(g *aig.Graph, words int, seed int64) *simVectors {
	sv := &simVectors{words: words, vec: make([][]uint64, g.Size())}
	sv.vec[0] = make([]uint64, words)

	rng := rand.New(rand.NewSource(seed))
	g.ForEachPI(func(n aig.ID) {
		w := make([]uint64, words)
		for i := range w {
			w[i] = rng.Uint64()
		}
		w[0] &^= 1
		sv.vec[n] = w
	})

	g.ForEachGate(func(n aig.ID) {
		c0, c1 := g.Children(n)
		a := sv.of(c0)
		b := sv.of(c1)
		out := make([]uint64, words)
		for i := range out {
			out[i] = a[i] & b[i]
		}
		sv.vec[n] = out
	})

	return sv
}

// of returns s's vector under its own (possibly complemented) polarity.
func (sv *simVectors) of(s aig.Signal) []uint64 {
	base := sv.vec[s.Index()]
	if !s.IsComplement() {
		return base
	}
	out := make([]uint64, len(base))
	for i, w := range base {
		out[i] = ^w
	}
	return out
}
