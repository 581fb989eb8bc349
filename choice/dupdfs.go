package choice

import "github.com/OSCC-Project/iMap-sub000/aig"

// DupDFS rebuilds g into a fresh graph, reordering nodes so that every
// representative's new index exceeds every other member of its
// equivalence class (spec.md §4.5). It is driven by a post-order
// traversal from the POs that recurses into a node's equiv chain before
// its fanins, so a class's tail is always created before its head.
//
// PIs keep their ordinal (PI i in g becomes PI i in the result). The
// returned slice holds the new PO signals in g's PO order.
func DupDFS(g *aig.Graph, v *View) (*aig.Graph, []aig.Signal) {
	d := &dupper{old: g, view: v, out: aig.NewGraph(),
		mapped: make([]aig.Signal, g.Size()), done: make([]bool, g.Size())}

	d.mapped[0] = aig.ConstFalse
	d.done[0] = true
	g.ForEachPI(func(n aig.ID) {
		d.mapped[n] = d.out.CreatePI()
		d.done[n] = true
	})

	pos := make([]aig.Signal, 0, g.NumPOs())
	g.ForEachPO(func(i int, s aig.Signal) {
		pos = append(pos, d.visit(s.Index()).Xor(s.IsComplement()))
	})
	for _, s := range pos {
		d.out.CreatePO(s)
	}
	return d.out, pos
}

type dupper struct {
	old    *aig.Graph
	view   *View
	out    *aig.Graph
	mapped []aig.Signal
	done   []bool
}

func (d *dupper) visit(n aig.ID) aig.Signal {
	if d.done[n] {
		return d.mapped[n]
	}
	if eq := d.view.Equiv(n); eq != noEquiv {
		d.visit(eq)
	}

	a, b := d.old.Children(n)
	as := d.visit(a.Index()).Xor(a.IsComplement())
	bs := d.visit(b.Index()).Xor(b.IsComplement())

	s := d.out.CreateAnd(as, bs)
	d.mapped[n] = s
	d.done[n] = true
	return s
}
