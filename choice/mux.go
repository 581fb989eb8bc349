package choice

import "github.com/OSCC-Project/iMap-sub000/aig"

// RecognizeMux detects the canonical AIG encoding of
// f = ctrl ? then : els, i.e.
//
//	f = NOT( AND( AND(ctrl, then)', AND(NOT ctrl, els)' ) )
//
// n must be the top AND gate of that pattern (its own output signal,
// complemented, is f). Both of n's children must themselves be AND gates
// fed into n with a complemented edge, and must share one grandchild up to
// complement — that shared grandchild is ctrl (spec.md §4.5).
func RecognizeMux(g *aig.Graph, n aig.ID) (ctrl, then, els aig.Signal, ok bool) {
	if !g.IsAnd(n) {
		return
	}
	y0, y1 := g.Children(n)
	if !y0.IsComplement() || !y1.IsComplement() {
		return
	}
	if !g.IsAnd(y0.Index()) || !g.IsAnd(y1.Index()) {
		return
	}

	a0, a1 := g.Children(y0.Index())
	b0, b1 := g.Children(y1.Index())

	candidates := []struct {
		m0shared, m0other aig.Signal
		m1shared, m1other aig.Signal
	}{
		{a0, a1, b0, b1},
		{a0, a1, b1, b0},
		{a1, a0, b0, b1},
		{a1, a0, b1, b0},
	}

	for _, c := range candidates {
		if c.m0shared.Index() == c.m1shared.Index() && c.m0shared.IsComplement() != c.m1shared.IsComplement() {
			return c.m0shared, c.m0other, c.m1other, true
		}
	}
	return
}

// IsMux is a boolean-only convenience wrapper around RecognizeMux.
func IsMux(g *aig.Graph, n aig.ID) bool {
	_, _, _, ok := RecognizeMux(g, n)
	return ok
}
