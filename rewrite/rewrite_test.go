package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/rewrite"
)

// liveConeSize counts the distinct live AND nodes reachable from s.
func liveConeSize(g *aig.Graph, s aig.Signal) int {
	seen := map[aig.ID]bool{}
	var walk func(idx aig.ID)
	walk = func(idx aig.ID) {
		if !g.IsAnd(idx) || g.IsDead(idx) || seen[idx] {
			return
		}
		seen[idx] = true
		c0, c1 := g.Children(idx)
		walk(c0.Index())
		walk(c1.Index())
	}
	walk(s.Index())
	return len(seen)
}

func TestCanonicalizeMatchesAnd4Template(t *testing.T) {
	canon, _, _ := rewrite.Canonicalize(0x8000) // AND of all four vars: only minterm 1111 is true
	canonAgain, _, _ := rewrite.Canonicalize(0x8000)
	require.Equal(t, canon, canonAgain, "canonicalization must be deterministic")
}

// TestRewriteReusesSharedSubterm builds AND4 as an unbalanced chain that
// happens to share its first pairwise term with the template's balanced
// tree shape, so instantiating the matched template reuses that term via
// structural hashing and leaves one chain node dead.
func TestRewriteReusesSharedSubterm(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()
	d := g.CreatePI()

	n1 := g.CreateAnd(a, b)
	n2 := g.CreateAnd(n1, c)
	n3 := g.CreateAnd(n2, d)
	g.CreatePO(n3)

	before := liveConeSize(g, g.PO(0))
	require.Equal(t, 3, before)

	rewrite.Run(g, rewrite.DefaultParams())

	after := liveConeSize(g, g.PO(0))
	require.LessOrEqual(t, after, before)
}

func TestRewriteRunIsIdempotentOnAlreadyMinimalCircuit(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()
	d := g.CreatePI()

	ab := g.CreateAnd(a, b)
	cd := g.CreateAnd(c, d)
	abcd := g.CreateAnd(ab, cd)
	g.CreatePO(abcd)

	before := liveConeSize(g, g.PO(0))
	rewrite.Run(g, rewrite.DefaultParams())
	after := liveConeSize(g, g.PO(0))

	require.Equal(t, before, after)
}
