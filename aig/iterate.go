package aig

// ForEachPI calls fn for every primary input, in creation order.
func (g *Graph) ForEachPI(fn func(idx ID)) {
	for _, idx := range g.piNodes {
		fn(idx)
	}
}

// ForEachPO calls fn for every primary output, in creation order.
func (g *Graph) ForEachPO(fn func(i int, s Signal)) {
	for i, s := range g.pos {
		fn(i, s)
	}
}

// ForEachGate calls fn for every live AND gate in ascending index order,
// skipping dead nodes, CIs and the constant.
func (g *Graph) ForEachGate(fn func(idx ID)) {
	for idx := ID(1); int(idx) < len(g.nodes); idx++ {
		n := &g.nodes[idx]
		if n.dead || n.isCI() {
			continue
		}
		fn(idx)
	}
}

// ForEachNode calls fn for every live node (PIs, constant, and gates) in
// ascending index order.
func (g *Graph) ForEachNode(fn func(idx ID)) {
	for idx := ID(0); int(idx) < len(g.nodes); idx++ {
		if g.nodes[idx].dead {
			continue
		}
		fn(idx)
	}
}

// ForEachFanin calls fn for each of idx's two fanin signals. For a PI or
// the constant it does not call fn at all.
func (g *Graph) ForEachFanin(idx ID, fn func(fanin Signal)) {
	n := &g.nodes[idx]
	if n.isCI() {
		return
	}
	fn(n.child0)
	fn(n.child1)
}

// CloneNode recreates a two-input gate in g from its already-translated
// fanins and returns the resulting signal. children[i] must already be
// signals valid in g.
func (g *Graph) CloneNode(children [2]Signal) Signal {
	return g.CreateAnd(children[0], children[1])
}

// Cleanup removes dead nodes from the arena, remapping every live index
// densely and returning the old→new index map (index 0 never moves).
// Cleanup removes exactly the dead nodes; live-node indices stay ordered.
func (g *Graph) Cleanup() (remap []ID) {
	remap = make([]ID, len(g.nodes))
	newNodes := make([]node, 0, len(g.nodes)-g.nDead)
	newNodes = append(newNodes, g.nodes[0])
	remap[0] = 0

	for idx := ID(1); int(idx) < len(g.nodes); idx++ {
		if g.nodes[idx].dead {
			continue
		}
		remap[idx] = ID(len(newNodes))
		newNodes = append(newNodes, g.nodes[idx])
	}

	fix := func(s Signal) Signal {
		return NewSignal(remap[s.Index()], s.IsComplement())
	}
	for i := range newNodes {
		if newNodes[i].isCI() {
			self := NewSignal(ID(i), false)
			newNodes[i].child0, newNodes[i].child1 = self, self
			continue
		}
		newNodes[i].child0 = fix(newNodes[i].child0)
		newNodes[i].child1 = fix(newNodes[i].child1)
	}

	g.nodes = newNodes
	g.nDead = 0
	for i, idx := range g.piNodes {
		g.piNodes[i] = remap[idx]
	}
	for i, s := range g.pos {
		g.pos[i] = fix(s)
	}

	g.hashTable = make([]ID, 16)
	for i := range g.hashTable {
		g.hashTable[i] = noNext
	}
	g.hashLoad = 0
	for idx := ID(1); int(idx) < len(g.nodes); idx++ {
		if g.nodes[idx].isCI() {
			continue
		}
		g.nodes[idx].next = noNext
		g.hashInsert(idx)
	}

	return remap
}
