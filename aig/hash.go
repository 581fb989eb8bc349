package aig

// Structural hashing keyed on the ordered, already-inverted fanin pair of
// an AND node. Buckets chain through node.next; a node is only ever
// chained while it is a live AND gate (CIs, the constant, and dead nodes
// are never members of any bucket).

func hashPair(c0, c1 Signal, tableSize int) int {
	// Simple Knuth multiplicative mix over the 128-bit (c0,c1) key, folded
	// into the table's bucket count (always a power of two).
	h := uint64(c0)*2654435761 ^ uint64(c1)*40503
	return int(h) & (tableSize - 1)
}

// hashLookup returns the node index whose ordered fanin pair equals
// (c0,c1), or 0 (meaning "not found" — index 0 is the constant and is
// never itself chained) together with ok=false.
func (g *Graph) hashLookup(c0, c1 Signal) (ID, bool) {
	bucket := hashPair(c0, c1, len(g.hashTable))
	for idx := g.hashTable[bucket]; idx != noNext; idx = g.nodes[idx].next {
		n := &g.nodes[idx]
		if n.dead {
			continue
		}
		if n.child0 == c0 && n.child1 == c1 {
			return idx, true
		}
	}
	return 0, false
}

// hashInsert chains idx into its bucket. idx must already hold its final
// (c0,c1) children.
func (g *Graph) hashInsert(idx ID) {
	n := &g.nodes[idx]
	bucket := hashPair(n.child0, n.child1, len(g.hashTable))
	n.next = g.hashTable[bucket]
	g.hashTable[bucket] = idx
	g.hashLoad++
	if g.hashLoad > 2*len(g.hashTable) {
		g.hashResize()
	}
}

// hashRemove unchains idx from its bucket ahead of a rewrite or take-out.
func (g *Graph) hashRemove(idx ID) {
	n := &g.nodes[idx]
	bucket := hashPair(n.child0, n.child1, len(g.hashTable))
	cur := g.hashTable[bucket]
	if cur == idx {
		g.hashTable[bucket] = n.next
		g.hashLoad--
		n.next = noNext
		return
	}
	for cur != noNext {
		nxt := g.nodes[cur].next
		if nxt == idx {
			g.nodes[cur].next = n.next
			g.hashLoad--
			n.next = noNext
			return
		}
		cur = nxt
	}
}

// hashResize doubles the bucket count and re-chains every live AND node.
// Triggered when the chain-load ratio exceeds 2, per spec.md §4.1.
func (g *Graph) hashResize() {
	newSize := len(g.hashTable) * 2
	g.hashTable = make([]ID, newSize)
	for i := range g.hashTable {
		g.hashTable[i] = noNext
	}
	g.hashLoad = 0
	for idx := ID(1); int(idx) < len(g.nodes); idx++ {
		n := &g.nodes[idx]
		if n.dead || n.isCI() {
			continue
		}
		n.next = noNext
		g.hashInsert(idx)
	}
}
