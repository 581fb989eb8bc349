package refactor

import "github.com/OSCC-Project/iMap-sub000/aig"

// Params bounds a refactoring pass (spec.md §6: I ≤ 12, cone ≤ 20).
type Params struct {
	IMax          int
	ConeMax       int
	AllowZeroGain bool
	AllowDepthUp  bool
}

// DefaultParams matches the source's default refactor invocation.
func DefaultParams() Params {
	return Params{IMax: 8, ConeMax: 20}
}

// Run refactors every gate of g with at most 1000 fanouts, in
// topological order, substituting a node's cone with a re-factored
// rebuild whenever gain and depth constraints both pass (spec.md §4.9).
func Run(g *aig.Graph, p Params) int {
	applied := 0
	g.ForEachGate(func(n aig.ID) {
		if g.FanoutSize(n) > 1000 {
			return
		}
		if newSig, ok := tryRefactor(g, n, p); ok {
			g.SubstituteNode(n, newSig)
			applied++
		}
	})
	return applied
}

// tryRefactor builds a reconvergence cut for n, simulates its cone,
// extracts the cheaper of isop(f)/isop(¬f), rebuilds it as a factored
// AND/OR tree, and gates acceptance on node-count gain and level
// non-regression (spec.md §4.9 steps 1-6).
func tryRefactor(g *aig.Graph, n aig.ID, p Params) (aig.Signal, bool) {
	leaves := buildCut(g, n, p.IMax)
	if _, ok := coneSize(g, n, leaves, p.ConeMax); !ok {
		return aig.Signal(0), false
	}

	words := simulate(g, n, leaves)
	nVars := uint(len(leaves))

	cubesPos := isop(words, nVars)
	negWords := copyWords(words)
	notInPlace(negWords, nVars)
	cubesNeg := isop(negWords, nVars)

	cubes, outNeg := cubesPos, false
	if literalCount(cubesNeg) < literalCount(cubesPos) {
		cubes, outNeg = cubesNeg, true
	}

	leafSigs := make([]aig.Signal, len(leaves))
	for i, l := range leaves {
		leafSigs[i] = aig.NewSignal(l, false)
	}

	before := mffcSize(g, n)
	beforeLevel := levelOf(g, n, map[aig.ID]int{})

	sizeBefore := g.Size()
	newSig := factor(g, leafSigs, cubes)
	if outNeg {
		newSig = newSig.Not()
	}
	after := g.Size() - sizeBefore

	gain := before - after
	accept := gain > 0 || (gain == 0 && p.AllowZeroGain)
	if !accept {
		return aig.Signal(0), false
	}

	if newSig.Index() == n {
		return aig.Signal(0), false // factored rebuild collapsed back to n itself
	}

	newLevel := levelOf(g, newSig.Index(), map[aig.ID]int{})
	if newLevel > beforeLevel && !p.AllowDepthUp {
		return aig.Signal(0), false
	}

	return newSig, true
}

// mffcSize approximates n's maximum fanout-free cone size the same way
// rewrite's gain estimator does: count AND nodes, recursing into a
// child only while it has exactly one fanout (see DESIGN.md).
func mffcSize(g *aig.Graph, n aig.ID) int {
	seen := map[aig.ID]bool{}
	var walk func(idx aig.ID)
	count := 0
	walk = func(idx aig.ID) {
		if !g.IsAnd(idx) || seen[idx] {
			return
		}
		seen[idx] = true
		count++
		c0, c1 := g.Children(idx)
		if g.FanoutSize(c0.Index()) <= 1 {
			walk(c0.Index())
		}
		if g.FanoutSize(c1.Index()) <= 1 {
			walk(c1.Index())
		}
	}
	walk(n)
	return count
}
