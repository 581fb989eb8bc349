package choice

import "github.com/OSCC-Project/iMap-sub000/aig"

// noEquiv is the "end of equivalence list" sentinel; it is never a valid
// node index because it is out of range for any realistic arena size and
// distinguishable from index 0 (the constant), which can legitimately
// anchor its own trivial class.
const noEquiv = ^aig.ID(0)

// View is an AIG-with-choices overlay: repr/equiv arrays parallel to the
// underlying graph's node array. It never mutates the graph itself.
type View struct {
	g     *aig.Graph
	repr  []aig.ID
	equiv []aig.ID
}

// NewView returns a view over g where every node is its own representative
// with an empty equivalence list.
func NewView(g *aig.Graph) *View {
	n := g.Size()
	v := &View{g: g, repr: make([]aig.ID, n), equiv: make([]aig.ID, n)}
	for i := range v.repr {
		v.repr[i] = aig.ID(i)
		v.equiv[i] = noEquiv
	}
	return v
}

// Repr returns n's class representative.
func (v *View) Repr(n aig.ID) aig.ID { return v.repr[n] }

// Equiv returns the next member of n's class, or noEquiv if n is the tail.
func (v *View) Equiv(n aig.ID) aig.ID { return v.equiv[n] }

// IsRepr reports whether n heads a nontrivial class and is still live
// (spec.md §4.5: "equiv[n] != NULL and fanout_size(n) > 0").
func (v *View) IsRepr(n aig.ID) bool {
	return v.equiv[n] != noEquiv && v.g.FanoutSize(n) > 0
}

// ForEachClassMember calls fn for every node in n's equivalence list,
// starting at n itself, in list order.
func (v *View) ForEachClassMember(n aig.ID, fn func(m aig.ID)) {
	for m := n; m != noEquiv; m = v.equiv[m] {
		fn(m)
	}
}

// SetChoice appends n to the tail of r's equivalence list and sets
// repr[n] = r. It fails (returns false, no mutation) if r >= n or if r is
// in the transitive fanin of n, which would create a cycle through the
// choice list (spec.md §3, §9 "cyclic choice list loop-check").
func (v *View) SetChoice(n, r aig.ID) bool {
	if r >= n {
		return false
	}
	if v.inFanin(n, r) {
		return false
	}

	tail := r
	for v.equiv[tail] != noEquiv {
		tail = v.equiv[tail]
	}
	v.equiv[tail] = n
	v.repr[n] = r
	return true
}

// inFanin reports whether target is reachable from n by following fanins
// (transitive support), using a traversal-id so repeated calls don't pay
// for a fresh visited-set allocation.
func (v *View) inFanin(n, target aig.ID) bool {
	trav := v.g.NewTravID()
	return v.walkFanin(n, target, trav)
}

func (v *View) walkFanin(n, target aig.ID, trav uint32) bool {
	if v.g.Visited(n, trav) {
		return false
	}
	v.g.SetTravID(n, trav)
	if n == target {
		return true
	}
	if v.g.IsPI(n) || v.g.IsConst(n) {
		return false
	}
	found := false
	v.g.ForEachFanin(n, func(fanin aig.Signal) {
		if !found && v.walkFanin(fanin.Index(), target, trav) {
			found = true
		}
	})
	return found
}
