package aig

// substTask is one pending rewrite: every live fanin currently pointing at
// old should instead point at new (XORing in new's own complement with the
// fanin's existing complement bit).
type substTask struct {
	old ID
	new Signal
}

// SubstituteNode rewires every live node (and every PO) whose fanin points
// at old so that it instead points at newSig, then takes old out if it is
// no longer self-referential. Iteration runs old+1..Size() ascending
// (spec.md §5: later nodes may depend on earlier ones, so this order lets
// a single pass catch rewrites that strashing turns into a further hit)
// and uses an explicit work stack rather than recursion, since a rewrite
// that collapses to a trivial value or a hash hit must itself be
// substituted before the pass can be considered complete.
func (g *Graph) SubstituteNode(old ID, newSig Signal) {
	stack := []substTask{{old, newSig}}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		old, newSig := task.old, task.new

		if g.nodes[old].dead {
			continue // resolved already via an earlier cascade step
		}

		for idx := old + 1; int(idx) < len(g.nodes); idx++ {
			n := &g.nodes[idx]
			if n.dead || n.isCI() {
				continue
			}
			origC0, origC1 := n.child0, n.child1
			c0, c1 := origC0, origC1
			changed := false
			if c0.Index() == old {
				c0 = newSig.Xor(c0.IsComplement())
				changed = true
			}
			if c1.Index() == old {
				c1 = newSig.Xor(c1.IsComplement())
				changed = true
			}
			if !changed {
				continue
			}
			if c0.Index() > c1.Index() {
				c0, c1 = c1, c0
			}

			if replacement, isTrivial := g.trivialAnd(c0, c1); isTrivial {
				stack = append(stack, substTask{idx, replacement})
				continue
			}
			if hit, ok := g.hashLookup(c0, c1); ok && hit != idx {
				stack = append(stack, substTask{idx, NewSignal(hit, false)})
				continue
			}

			g.hashRemove(idx)
			n.child0, n.child1 = c0, c1
			g.hashInsert(idx)

			// Reference newSig before releasing old: newSig may sit inside
			// old's cone, and dropping old's last reference first would
			// take it out.
			if origC0.Index() == old {
				g.ref(newSig.Index())
				g.deref(old)
			}
			if origC1.Index() == old {
				g.ref(newSig.Index())
				g.deref(old)
			}
			if g.hooks.hasObservers() {
				g.hooks.fire(EventModified, idx)
			}
		}

		for i, po := range g.pos {
			if po.Index() == old {
				g.pos[i] = newSig.Xor(po.IsComplement())
				g.ref(newSig.Index())
				g.deref(old)
			}
		}

		if old != newSig.Index() && g.nodes[old].fanoutSize == 0 && !g.nodes[old].dead {
			g.takeOutNode(old)
		}
	}
}

// trivialAnd reports the value of c0∧c1 (already ordered) if it collapses
// under the trivial simplifications of spec.md §3, without touching the
// structural hash.
func (g *Graph) trivialAnd(c0, c1 Signal) (Signal, bool) {
	if c0.Index() == c1.Index() {
		if c0 == c1 {
			return c0, true
		}
		return ConstFalse, true
	}
	if c0.Index() == 0 {
		if c0 == ConstFalse {
			return ConstFalse, true
		}
		return c1, true
	}
	return 0, false
}

// SubstitutePair is one entry of a SubstituteNodes batch.
type SubstitutePair struct {
	Old ID
	New Signal
}

// SubstituteNodes applies a batch of substitutions. If processing an
// earlier pair's cascade deletes a node that is also the left side of a
// later, not-yet-applied pair, that later pair is dropped: the on-delete
// hook (scoped to this call only) marks it cancelled so the loop below
// skips it instead of substituting an already-dead node.
func (g *Graph) SubstituteNodes(pairs []SubstitutePair) {
	cancelled := make(map[ID]bool, len(pairs))
	unregister := g.OnEvent(func(kind EventKind, idx ID) {
		if kind == EventDelete {
			cancelled[idx] = true
		}
	})
	defer unregister()

	for _, p := range pairs {
		if cancelled[p.Old] || g.nodes[p.Old].dead {
			continue
		}
		g.SubstituteNode(p.Old, p.New)
	}
}
