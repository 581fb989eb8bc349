package dch

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/sat"
)

// valueUnder reads the boolean value s evaluates to, given that every
// node's regular polarity has already been written into its mark-B bit
// by propagateCounterExample.
func valueUnder(g *aig.Graph, s aig.Signal) bool {
	if s.Index() == 0 {
		return s.IsComplement()
	}
	v := g.MarkB(s.Index())
	if s.IsComplement() {
		return !v
	}
	return v
}

// propagateCounterExample evaluates g under cex, PI by PI then gate by
// gate in topological order, storing each node's value in its mark-B
// scratch bit (spec.md §4.6 step 2: "obtain the counter-example from the
// solver, propagate it through the AIG via mark-B bits"). A PI absent
// from cex (outside the proof's cone) is treated as false, matching
// sat.ProveWithBudget's own "don't-care" convention for such PIs.
func propagateCounterExample(g *aig.Graph, cex sat.CounterExample) {
	g.ForEachPI(func(n aig.ID) {
		g.SetMarkB(n, cex[n])
	})
	g.ForEachGate(func(n aig.ID) {
		c0, c1 := g.Children(n)
		g.SetMarkB(n, valueUnder(g, c0) && valueUnder(g, c1))
	})
}

// refine folds a counter-example into sv as one new simulation pattern,
// shifted into bit 0 of every node's lowest word, then reclassifies every
// node from scratch so the refutation that separated one candidate pair
// also separates every other member of the same (now known-too-coarse)
// simulation class (spec.md §4.6 step 2: "re-simulate the TFO of r and n,
// refine every affected class").
func refine(g *aig.Graph, sv *simVectors, cex sat.CounterExample) []aig.ID {
	propagateCounterExample(g, cex)

	g.ForEachNode(func(n aig.ID) {
		if g.IsConst(n) {
			return
		}
		bit := uint64(0)
		if g.MarkB(n) {
			bit = 1
		}
		w := sv.vec[n]
		w[0] = (w[0] << 1) | bit
	})

	return classify(g, sv)
}
