package balance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/balance"
)

// coneStats walks the AND-only cone from s and returns (depth, distinct
// AND-node count).
func coneStats(g *aig.Graph, s aig.Signal) (depth, size int) {
	seen := map[aig.ID]bool{}
	var walk func(idx aig.ID) int
	walk = func(idx aig.ID) int {
		if !g.IsAnd(idx) {
			return 0
		}
		if !seen[idx] {
			seen[idx] = true
			size++
		}
		c0, c1 := g.Children(idx)
		d0 := walk(c0.Index())
		d1 := walk(c1.Index())
		if d0 > d1 {
			return d0 + 1
		}
		return d1 + 1
	}
	depth = walk(s.Index())
	return depth, size
}

func TestBalanceChainOfFourInputs(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()
	d := g.CreatePI()

	ab := g.CreateAnd(a, b)
	abc := g.CreateAnd(ab, c)
	abcd := g.CreateAnd(abc, d)
	g.CreatePO(abcd)

	beforeDepth, _ := coneStats(g, g.PO(0))
	require.Equal(t, 3, beforeDepth)

	balance.New(g).Run()

	afterDepth, afterSize := coneStats(g, g.PO(0))
	require.Equal(t, 2, afterDepth)
	require.Equal(t, 3, afterSize)
}

// TestBalanceIsIdempotent checks spec.md §8's balance(balance(aig)) law:
// re-running balance on an already-balanced cone changes neither its
// depth nor its node count.
func TestBalanceIsIdempotent(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()
	d := g.CreatePI()
	e := g.CreatePI()

	abc := g.CreateAnd(g.CreateAnd(a, b), c)
	abcde := g.CreateAnd(abc, g.CreateAnd(d, e))
	g.CreatePO(abcde)

	balance.New(g).Run()
	onceDepth, onceSize := coneStats(g, g.PO(0))

	balance.New(g).Run()
	twiceDepth, twiceSize := coneStats(g, g.PO(0))

	require.Equal(t, onceDepth, twiceDepth)
	require.Equal(t, onceSize, twiceSize)
}
