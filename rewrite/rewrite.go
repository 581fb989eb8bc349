package rewrite

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/cut"
	"github.com/OSCC-Project/iMap-sub000/cutenum"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// Params configures a rewriting pass.
type Params struct {
	K int // cut leaf bound (spec.md §6: K∈[2,8], fixed at 4 here since the
	// database's templates are 4-input)
	L int // per-node cut-set capacity
}

// DefaultParams returns the 4-leaf, 8-cut-per-node configuration used by
// the source's "rw" pass (spec.md §4.8).
func DefaultParams() Params {
	return Params{K: 4, L: 8}
}

// Run rewrites every gate of g in topological order, substituting a
// node's driving cone with a database match whenever the estimated gain
// (MFFC size minus new nodes) is positive (spec.md §4.8 steps 3-6).
func Run(g *aig.Graph, p Params) int {
	tt := ttable.NewTable()
	cuts := cutenum.Enumerate(g, cutenum.Params{K: p.K, L: p.L, ComputeTruth: true}, tt)

	applied := 0
	g.ForEachGate(func(n aig.ID) {
		if newSig, ok := tryRewrite(g, cuts, tt, n); ok {
			g.SubstituteNode(n, newSig)
			applied++
		}
	})
	return applied
}

// tryRewrite looks for the best database match among n's enumerated cuts
// and returns a replacement signal if one produces a net node-count gain.
func tryRewrite(g *aig.Graph, cuts *cutenum.Map, tt *ttable.Table, n aig.ID) (aig.Signal, bool) {
	set := cuts.Get(n)
	if set == nil {
		return aig.Signal(0), false
	}

	before := mffcSize(g, n)
	var bestSig aig.Signal
	bestGain := 0
	found := false

	for _, c := range set.All() {
		if len(c.Leaves) < 2 || !c.HasTruth {
			continue
		}
		sig, newNodes, ok := matchAndInstantiate(g, tt, c)
		if !ok {
			continue
		}
		gain := before - newNodes
		if !found || gain > bestGain {
			found = true
			bestGain = gain
			bestSig = sig
		}
	}

	if found && bestGain > 0 {
		return bestSig, true
	}
	return aig.Signal(0), false
}

// matchAndInstantiate canonicalizes c's truth table, looks up a database
// entry for the canonical form, and if found instantiates it against a
// scratch count of g's current size so the caller can measure the net
// new-node cost.
func matchAndInstantiate(g *aig.Graph, tt *ttable.Table, c *cut.Cut) (aig.Signal, int, bool) {
	padded, cutPhase, cutPerm := canonicalizeCut(tt, c)
	entries, ok := database[padded]
	if !ok || len(entries) == 0 {
		return aig.Signal(0), 0, false
	}
	e := entries[0]

	var leaves [4]aig.Signal
	for k := 0; k < 4; k++ {
		srcPos := cutPerm[k]
		var leaf aig.Signal
		if srcPos < len(c.Leaves) {
			leaf = aig.NewSignal(c.Leaves[srcPos], false)
		} else {
			leaf = aig.ConstFalse
		}
		cutBit := (cutPhase>>uint(srcPos))&1 == 1
		entryBit := (e.phase>>uint(k))&1 == 1
		leaves[e.perm[k]] = leaf.Xor(cutBit != entryBit)
	}

	before := g.Size()
	outNeg := (cutPhase>>4)&1 != (e.phase>>4)&1
	sig := instantiate(g, leaves, e.sig).Xor(outNeg)
	after := g.Size()
	return sig, after - before, true
}

// canonicalizeCut pads c's truth table out to 4 variables (don't-care in
// the high positions) and canonicalizes it, returning the canonical form
// alongside the phase/permutation describing how c's own leaf order maps
// onto canonical variable order.
func canonicalizeCut(tt *ttable.Table, c *cut.Cut) (uint16, uint8, [4]int) {
	_, words := tt.Get(c.Truth)
	n := len(c.Leaves)
	var packed uint16
	total := 1 << uint(n)
	for m := 0; m < total; m++ {
		if words[m/64]&(uint64(1)<<uint(m%64)) != 0 {
			packed |= 1 << uint(m)
		}
	}
	// Replicate the n-variable pattern across the unused high variables so
	// the 4-variable table is well-formed (don't-care expansion).
	full := packed
	for w := n; w < 4; w++ {
		full |= full << uint(1<<uint(w))
	}
	canon, phase, perm := Canonicalize(full)
	return canon, phase, perm
}

// mffcSize approximates the maximum fanout-free cone rooted at n: the
// number of AND nodes that would become dead if n were replaced, counting
// into a child only when n's cone is its sole fanout (spec.md §4.8's "MFFC
// size as a proxy for node-count gain" — an approximation of full
// reference-count deref accounting; see DESIGN.md).
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
