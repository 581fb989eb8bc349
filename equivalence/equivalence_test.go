package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/equivalence"
)

func buildXor(g *aig.Graph, a, b aig.Signal) aig.Signal {
	f1 := g.CreateAnd(a, b).Not()
	f2 := g.CreateAnd(a, f1).Not()
	f3 := g.CreateAnd(b, f1).Not()
	return g.CreateAnd(f2, f3).Not()
}

func TestCheckAcceptsStructurallyDifferentButEquivalentGraphs(t *testing.T) {
	g1 := aig.NewGraph()
	a1, b1 := g1.CreatePI(), g1.CreatePI()
	g1.CreatePO(buildXor(g1, a1, b1))

	// same function, built via De Morgan instead of NAND-NAND-NAND-NAND.
	g2 := aig.NewGraph()
	a2, b2 := g2.CreatePI(), g2.CreatePI()
	orAB := g2.CreateAnd(a2.Not(), b2.Not()).Not()
	andAB := g2.CreateAnd(a2, b2)
	g2.CreatePO(g2.CreateAnd(orAB, andAB.Not()))

	res, cex, err := equivalence.Check(g1, g2)
	require.NoError(t, err)
	require.Equal(t, equivalence.Equivalent, res)
	require.Nil(t, cex)
}

func TestCheckRejectsDifferentFunctions(t *testing.T) {
	g1 := aig.NewGraph()
	a1, b1 := g1.CreatePI(), g1.CreatePI()
	g1.CreatePO(buildXor(g1, a1, b1))

	g2 := aig.NewGraph()
	a2, b2 := g2.CreatePI(), g2.CreatePI()
	g2.CreatePO(g2.CreateAnd(a2, b2)) // AND, not XOR

	res, cex, err := equivalence.Check(g1, g2)
	require.NoError(t, err)
	require.Equal(t, equivalence.NonEquivalent, res)
	require.NotNil(t, cex)
}

func TestCheckRejectsMismatchedPICount(t *testing.T) {
	g1 := aig.NewGraph()
	a1 := g1.CreatePI()
	g1.CreatePO(a1)

	g2 := aig.NewGraph()
	a2, b2 := g2.CreatePI(), g2.CreatePI()
	g2.CreatePO(g2.CreateAnd(a2, b2))

	_, _, err := equivalence.Check(g1, g2)
	require.Error(t, err)
}
