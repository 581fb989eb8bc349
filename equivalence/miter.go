package equivalence

import "github.com/OSCC-Project/iMap-sub000/aig"

// copyInto duplicates src's combinational logic into dst, reusing dst's
// first src.NumPIs() PIs as src's PIs (by creation order) rather than
// allocating fresh ones, so both copies share a single PI vector. It
// returns the translated signal for every src PO, in order.
func copyInto(dst *aig.Graph, src *aig.Graph, sharedPIs []aig.Signal) []aig.Signal {
	mapped := make([]aig.Signal, src.Size())
	piOrdinal := make(map[aig.ID]int, src.NumPIs())
	for i := 0; i < src.NumPIs(); i++ {
		piOrdinal[src.PI(i)] = i
	}

	var translate func(s aig.Signal) aig.Signal
	translate = func(s aig.Signal) aig.Signal {
		idx := s.Index()
		if idx == 0 {
			return s // constant, same in every graph
		}
		return mapped[idx].Xor(s.IsComplement())
	}

	for id := aig.ID(1); int(id) < src.Size(); id++ {
		if src.IsDead(id) {
			continue // substituted-away node, nothing live references it
		}
		if src.IsPI(id) {
			mapped[id] = sharedPIs[piOrdinal[id]]
			continue
		}
		c0, c1 := src.Children(id)
		mapped[id] = dst.CreateAnd(translate(c0), translate(c1))
	}

	outs := make([]aig.Signal, src.NumPOs())
	for i := 0; i < src.NumPOs(); i++ {
		outs[i] = translate(src.PO(i))
	}
	return outs
}

// buildMiter returns a fresh graph whose single PO is the OR of the
// pairwise XORs of a's and b's outputs: the PO evaluates to true under
// some PI assignment iff a and b disagree on at least one output there.
func buildMiter(a, b *aig.Graph) (*aig.Graph, error) {
	if a.NumPIs() != b.NumPIs() {
		return nil, errMismatch("PI count", a.NumPIs(), b.NumPIs())
	}
	if a.NumPOs() != b.NumPOs() {
		return nil, errMismatch("PO count", a.NumPOs(), b.NumPOs())
	}

	m := aig.NewGraph()
	shared := make([]aig.Signal, a.NumPIs())
	for i := range shared {
		shared[i] = m.CreatePI()
	}

	outsA := copyInto(m, a, shared)
	outsB := copyInto(m, b, shared)

	miter := aig.ConstFalse
	for i := range outsA {
		a1, b1 := outsA[i], outsB[i]
		nab := m.CreateAnd(a1, b1.Not())    // a & !b
		nba := m.CreateAnd(a1.Not(), b1)    // !a & b
		xor := m.CreateAnd(nab.Not(), nba.Not()).Not()
		miter = m.CreateAnd(miter.Not(), xor.Not()).Not() // OR(miter, xor)
	}
	m.CreatePO(miter)
	return m, nil
}
