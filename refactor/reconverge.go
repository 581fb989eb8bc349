package refactor

import "github.com/OSCC-Project/iMap-sub000/aig"

// buildCut grows a reconvergence-driven cut for n starting from its two
// fanins, repeatedly expanding the leaf whose replacement introduces the
// fewest new leaves (ties broken toward the deeper leaf), stopping once
// no further expansion fits within iMax leaves (spec.md §4.9 step 1).
func buildCut(g *aig.Graph, n aig.ID, iMax int) []aig.ID {
	c0, c1 := g.Children(n)
	leaves := dedupAppend(nil, c0.Index(), c1.Index())

	for len(leaves) < iMax {
		bestPos := -1
		bestNew := -1
		bestLevel := -1

		for i, l := range leaves {
			if !g.IsAnd(l) {
				continue
			}
			lc0, lc1 := g.Children(l)
			rest := without(leaves, i)
			newCount := 0
			if indexOfID(rest, lc0.Index()) < 0 {
				newCount++
			}
			if lc1.Index() != lc0.Index() && indexOfID(rest, lc1.Index()) < 0 {
				newCount++
			}
			resultSize := len(rest) + newCount
			if resultSize > iMax {
				continue
			}
			lvl := levelOf(g, l, map[aig.ID]int{})
			if bestPos < 0 || newCount < bestNew || (newCount == bestNew && lvl > bestLevel) {
				bestPos, bestNew, bestLevel = i, newCount, lvl
			}
		}

		if bestPos < 0 {
			break
		}
		lc0, lc1 := g.Children(leaves[bestPos])
		leaves = without(leaves, bestPos)
		leaves = dedupAppend(leaves, lc0.Index(), lc1.Index())
	}
	return leaves
}

// coneSize counts the distinct AND nodes strictly between n and leaves,
// aborting (returning ok=false) once the count would exceed coneMax
// (spec.md §4.9 step 2).
func coneSize(g *aig.Graph, n aig.ID, leaves []aig.ID, coneMax int) (int, bool) {
	isLeaf := make(map[aig.ID]bool, len(leaves))
	for _, l := range leaves {
		isLeaf[l] = true
	}
	seen := map[aig.ID]bool{}
	ok := true
	var walk func(idx aig.ID)
	walk = func(idx aig.ID) {
		if !ok || isLeaf[idx] || !g.IsAnd(idx) || seen[idx] {
			return
		}
		seen[idx] = true
		if len(seen) > coneMax {
			ok = false
			return
		}
		c0, c1 := g.Children(idx)
		walk(c0.Index())
		walk(c1.Index())
	}
	walk(n)
	return len(seen), ok
}

func levelOf(g *aig.Graph, n aig.ID, memo map[aig.ID]int) int {
	if v, ok := memo[n]; ok {
		return v
	}
	if !g.IsAnd(n) {
		memo[n] = 0
		return 0
	}
	c0, c1 := g.Children(n)
	l0 := levelOf(g, c0.Index(), memo)
	l1 := levelOf(g, c1.Index(), memo)
	lv := l0 + 1
	if l1 > l0 {
		lv = l1 + 1
	}
	memo[n] = lv
	return lv
}

func dedupAppend(leaves []aig.ID, ids ...aig.ID) []aig.ID {
	for _, id := range ids {
		if indexOfID(leaves, id) < 0 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

func without(leaves []aig.ID, pos int) []aig.ID {
	out := make([]aig.ID, 0, len(leaves)-1)
	out = append(out, leaves[:pos]...)
	out = append(out, leaves[pos+1:]...)
	return out
}

func indexOfID(leaves []aig.ID, id aig.ID) int {
	for i, l := range leaves {
		if l == id {
			return i
		}
	}
	return -1
}
