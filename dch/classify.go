package dch

import (
	"encoding/binary"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

// classify groups nodes by equal simulation vector, normalized by node
// phase (spec.md §4.6 step 1: "XOR under node phase", so that a node and
// its functional complement land in the same bucket), and returns each
// node's candidate representative: the first (lowest-index) node seen
// with that normalized vector.
func classify(g *aig.Graph, sv *simVectors) []aig.ID {
	repr := make([]aig.ID, g.Size())
	for i := range repr {
		repr[i] = aig.ID(i)
	}

	buckets := make(map[string]aig.ID)
	g.ForEachNode(func(n aig.ID) {
		if g.IsConst(n) {
			return
		}
		key := normalizedKey(g, sv, n)
		if r, ok := buckets[key]; ok {
			repr[n] = r
		} else {
			buckets[key] = n
		}
	})
	return repr
}

func normalizedKey(g *aig.Graph, sv *simVectors, n aig.ID) string {
	words := sv.vec[n]
	flip := g.Phase(n)
	b := make([]byte, len(words)*8)
	for i, w := range words {
		if flip {
			w = ^w
		}
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
	return string(b)
}
