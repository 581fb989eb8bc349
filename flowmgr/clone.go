package flowmgr

import "github.com/OSCC-Project/iMap-sub000/aig"

// copyGraph duplicates src's live PIs/gates/POs into a fresh graph,
// walking ascending index order (every node's children have a smaller
// index than the node itself, the same invariant choice/dupdfs.go's
// single-pass copy exploits).
func copyGraph(src *aig.Graph) *aig.Graph {
	dst := aig.NewGraph()
	mapped := make([]aig.Signal, src.Size())

	translate := func(s aig.Signal) aig.Signal {
		if s.Index() == 0 {
			return s
		}
		return mapped[s.Index()].Xor(s.IsComplement())
	}

	for id := aig.ID(1); int(id) < src.Size(); id++ {
		if src.IsDead(id) {
			continue
		}
		if src.IsPI(id) {
			mapped[id] = dst.CreatePI()
			continue
		}
		c0, c1 := src.Children(id)
		mapped[id] = dst.CreateAnd(translate(c0), translate(c1))
	}

	for i := 0; i < src.NumPOs(); i++ {
		dst.CreatePO(translate(src.PO(i)))
	}
	return dst
}

// mergeForChoice copies every graph in snapshots into one shared-PI
// graph and keeps only the first snapshot's POs as the merged graph's
// POs, matching the source's choice_miter ("only the nodes of integer
// multiple sequence number of _aigs.size() are reserved" keeps the
// first-added AIG's outputs while every snapshot's internal nodes stay
// present as choice candidates).
func mergeForChoice(snapshots []*aig.Graph) (*aig.Graph, error) {
	if len(snapshots) == 0 {
		return nil, errNoSnapshots
	}
	numPIs := snapshots[0].NumPIs()
	numPOs := snapshots[0].NumPOs()
	for _, g := range snapshots {
		if g.NumPIs() != numPIs {
			return nil, errPIMismatch
		}
		if g.NumPOs() != numPOs {
			return nil, errPOMismatch
		}
	}

	dst := aig.NewGraph()
	shared := make([]aig.Signal, numPIs)
	for i := range shared {
		shared[i] = dst.CreatePI()
	}

	var keptPOs []aig.Signal
	for gi, g := range snapshots {
		mapped := make([]aig.Signal, g.Size())
		piOrdinal := make(map[aig.ID]int, g.NumPIs())
		for i := 0; i < g.NumPIs(); i++ {
			piOrdinal[g.PI(i)] = i
		}

		translate := func(s aig.Signal) aig.Signal {
			if s.Index() == 0 {
				return s
			}
			return mapped[s.Index()].Xor(s.IsComplement())
		}

		for id := aig.ID(1); int(id) < g.Size(); id++ {
			if g.IsDead(id) {
				continue
			}
			if g.IsPI(id) {
				mapped[id] = shared[piOrdinal[id]]
				continue
			}
			c0, c1 := g.Children(id)
			mapped[id] = dst.CreateAnd(translate(c0), translate(c1))
		}

		if gi == 0 {
			for i := 0; i < g.NumPOs(); i++ {
				keptPOs = append(keptPOs, translate(g.PO(i)))
			}
		}
	}

	for _, s := range keptPOs {
		dst.CreatePO(s)
	}
	return dst, nil
}
