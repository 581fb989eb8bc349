package aig

// GetConstant returns the constant signal for v: ConstFalse or ConstTrue.
// Always the same signal for the same v (spec.md §4.1).
func GetConstant(v bool) Signal {
	if v {
		return ConstTrue
	}
	return ConstFalse
}

// CreatePI appends a new primary input and returns its signal.
func (g *Graph) CreatePI() Signal {
	idx := ID(len(g.nodes))
	self := NewSignal(idx, false)
	g.nodes = append(g.nodes, node{child0: self, child1: self, phase: false})
	g.piNodes = append(g.piNodes, idx)
	return self
}

// CreatePO appends s as a new primary output and references it.
func (g *Graph) CreatePO(s Signal) {
	g.pos = append(g.pos, s)
	g.ref(s.Index())
}

// CreateAnd returns the signal for a∧b, applying trivial simplifications
// and structural hashing before allocating anything new (spec.md §3, §4.1).
func (g *Graph) CreateAnd(a, b Signal) Signal {
	// Enforce ordered fanins: children[0].index <= children[1].index.
	if a.Index() > b.Index() {
		a, b = b, a
	}

	if a.Index() == b.Index() {
		if a == b {
			return a // a ∧ a = a
		}
		return ConstFalse // a ∧ ¬a = 0
	}
	if a.Index() == 0 {
		// a is a reference to the constant node: either 0 or 1.
		if a == ConstFalse {
			return ConstFalse // 0 ∧ b = 0
		}
		return b // 1 ∧ b = b
	}

	if idx, ok := g.hashLookup(a, b); ok {
		return NewSignal(idx, false)
	}

	idx := ID(len(g.nodes))
	phase := (g.SignalPhase(a)) && (g.SignalPhase(b))
	g.nodes = append(g.nodes, node{child0: a, child1: b, phase: phase})
	g.hashInsert(idx)
	g.ref(a.Index())
	g.ref(b.Index())

	if g.hooks.hasObservers() {
		g.hooks.fire(EventAdd, idx)
	}
	return NewSignal(idx, false)
}

// ref increments idx's fanout count. Index 0 (the constant) is never dead
// and its count is tracked but never examined for reclamation.
func (g *Graph) ref(idx ID) {
	g.nodes[idx].fanoutSize++
}

// deref decrements idx's fanout count, taking the node out (recursively
// dereferencing its own fanins first) if the count reaches zero and idx is
// an AND gate. PIs and the constant are never taken out by deref.
func (g *Graph) deref(idx ID) {
	n := &g.nodes[idx]
	assertf(n.fanoutSize > 0, "aig: deref of node %d with zero fanout", idx)
	n.fanoutSize--
	if n.fanoutSize == 0 && !n.isCI() && !n.dead {
		g.takeOutNode(idx)
	}
}

// takeOutNode marks idx dead, removes it from the structural hash, and
// recursively dereferences its fanins. Logical deletion only: the slot
// stays in g.nodes until a Cleanup pass compacts the arena.
func (g *Graph) takeOutNode(idx ID) {
	n := &g.nodes[idx]
	assertf(!n.dead, "aig: double take-out of node %d", idx)
	assertf(!n.isCI(), "aig: take-out of CI/constant node %d", idx)

	g.hashRemove(idx)
	c0, c1 := n.child0, n.child1
	n.dead = true
	g.nDead++

	if g.hooks.hasObservers() {
		g.hooks.fire(EventDelete, idx)
	}

	g.deref(c0.Index())
	g.deref(c1.Index())
}
