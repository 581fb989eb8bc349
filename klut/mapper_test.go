package klut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/klut"
)

func TestRunCollapsesIntoSingleLUTWhenItFits(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()
	d := g.CreatePI()
	n1 := g.CreateAnd(a, b)
	n2 := g.CreateAnd(n1, c)
	n3 := g.CreateAnd(n2, d)
	g.CreatePO(n3)

	m := klut.Run(g, klut.DefaultParams(), nil)

	require.Len(t, m.Cells, 1)
	require.Equal(t, n3.Index(), m.Cells[0].Root)
	require.ElementsMatch(t, []aig.ID{a.Index(), b.Index(), c.Index(), d.Index()}, m.Cells[0].Leaves)
	require.Equal(t, g.PO(0), m.POs[0])
}

func TestRunRespectsCutSizeBound(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()
	d := g.CreatePI()
	n1 := g.CreateAnd(a, b)
	n2 := g.CreateAnd(c, d)
	n3 := g.CreateAnd(n1, n2)
	g.CreatePO(n3)

	p := klut.Params{K: 2, L: 4, FlowIters: 1, AreaIters: 1, Preprocess: false}
	m := klut.Run(g, p, nil)

	require.Greater(t, len(m.Cells), 1)
	for _, cell := range m.Cells {
		require.LessOrEqual(t, len(cell.Leaves), p.K)
	}

	cellRoots := map[aig.ID]bool{}
	for _, cell := range m.Cells {
		cellRoots[cell.Root] = true
	}
	for _, cell := range m.Cells {
		for _, leaf := range cell.Leaves {
			if g.IsPI(leaf) || g.IsConst(leaf) {
				continue
			}
			require.True(t, cellRoots[leaf], "leaf %d must be a PI/const or another cell's root", leaf)
		}
	}
}

func TestRunMappingCoversEveryPO(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	ab := g.CreateAnd(a, b)
	g.CreatePO(ab)
	g.CreatePO(a)

	m := klut.Run(g, klut.DefaultParams(), nil)
	require.Len(t, m.POs, 2)
	require.Equal(t, ab, m.POs[0])
	require.Equal(t, a, m.POs[1])
}
