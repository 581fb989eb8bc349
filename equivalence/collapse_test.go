package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/equivalence"
	"github.com/OSCC-Project/iMap-sub000/klut"
)

func TestCollapseThenCheckAgreesWithMappedSource(t *testing.T) {
	g := aig.NewGraph()
	a, b, c := g.CreatePI(), g.CreatePI(), g.CreatePI()
	ab := g.CreateAnd(a, b)
	bc := g.CreateAnd(b, c)
	ca := g.CreateAnd(c, a)
	orABBC := g.CreateAnd(ab.Not(), bc.Not()).Not()       // ab | bc
	out := g.CreateAnd(orABBC.Not(), ca.Not()).Not()      // (ab|bc) | ca  == majority(a,b,c)
	g.CreatePO(out)

	m := klut.Run(g, klut.DefaultParams(), nil)
	collapsed := equivalence.Collapse(g, m)

	res, cex, err := equivalence.Check(g, collapsed)
	require.NoError(t, err)
	require.Equal(t, equivalence.Equivalent, res, "counterexample: %v", cex)
}
