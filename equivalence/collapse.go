package equivalence

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/klut"
)

// orSignal returns a OR b built from AND/NOT (De Morgan), since the core
// has no dedicated OR node type.
func orSignal(g *aig.Graph, a, b aig.Signal) aig.Signal {
	return g.CreateAnd(a.Not(), b.Not()).Not()
}

// sumOfMinterms rebuilds words (an nVars-variable truth table) as a
// literal sum of its minterms over leaves: correct but not minimal,
// which is fine here since Collapse exists only to give the equivalence
// checker something to compare, not to produce a synthesizable network
// (spec.md §8's "collapse_klut(map(aig))" round-trip law).
func sumOfMinterms(g *aig.Graph, leaves []aig.Signal, nVars uint, words []uint64) aig.Signal {
	acc := aig.ConstFalse
	nBits := 1 << nVars
	for mt := 0; mt < nBits; mt++ {
		if words[mt/64]>>uint(mt%64)&1 == 0 {
			continue
		}
		term := aig.ConstTrue
		for v := uint(0); v < nVars; v++ {
			lit := leaves[v]
			if mt&(1<<v) == 0 {
				lit = lit.Not()
			}
			term = g.CreateAnd(term, lit)
		}
		acc = orSignal(g, acc, term)
	}
	return acc
}

// Collapse rebuilds m as a plain AIG over g's primary inputs: one
// sum-of-minterms subgraph per cell, wired together the way the cells'
// leaf references already describe, letting Check compare a k-LUT
// mapping directly against the AIG it was derived from.
func Collapse(g *aig.Graph, m *klut.Mapping) *aig.Graph {
	out := aig.NewGraph()

	pis := make([]aig.Signal, g.NumPIs())
	for i := range pis {
		pis[i] = out.CreatePI()
	}
	piOrdinal := make(map[aig.ID]int, g.NumPIs())
	g.ForEachPI(func(id aig.ID) {
		piOrdinal[id] = len(piOrdinal)
	})

	cellByRoot := make(map[aig.ID]klut.Cell, len(m.Cells))
	for _, c := range m.Cells {
		cellByRoot[c.Root] = c
	}

	built := make(map[aig.ID]aig.Signal)
	var resolve func(id aig.ID) aig.Signal
	resolve = func(id aig.ID) aig.Signal {
		if id == 0 {
			return aig.ConstFalse
		}
		if s, ok := built[id]; ok {
			return s
		}
		if ord, ok := piOrdinal[id]; ok {
			s := pis[ord]
			built[id] = s
			return s
		}

		var s aig.Signal
		if c, ok := cellByRoot[id]; ok {
			leafSigs := make([]aig.Signal, len(c.Leaves))
			for i, l := range c.Leaves {
				leafSigs[i] = resolve(l)
			}
			switch {
			case !c.HasTruth && len(leafSigs) == 1:
				s = leafSigs[0]
			case !c.HasTruth:
				s = aig.ConstFalse
			default:
				nVars, words := m.Truths.Get(c.Truth)
				s = sumOfMinterms(out, leafSigs, nVars, words)
			}
		} else {
			// Referenced but neither a PI nor a mapped cell: an
			// incomplete mapping. Treat it as a free input so Collapse
			// still returns a well-formed graph for whatever it did map.
			s = out.CreatePI()
		}
		built[id] = s
		return s
	}

	for _, po := range m.POs {
		resolved := resolve(po.Index())
		out.CreatePO(resolved.Xor(po.IsComplement()))
	}
	return out
}
