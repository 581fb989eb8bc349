package sat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/sat"
)

func TestProveDistributiveLawIsEquivalent(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()

	// f1 = a & (b | c)
	orBC := g.CreateAnd(b.Not(), c.Not()).Not()
	f1 := g.CreateAnd(a, orBC)

	// f2 = (a & b) | (a & c)
	ab := g.CreateAnd(a, b)
	ac := g.CreateAnd(a, c)
	f2 := g.CreateAnd(ab.Not(), ac.Not()).Not()

	result, cex := sat.Prove(g, f1, f2)
	require.Equal(t, sat.Equivalent, result)
	require.Nil(t, cex)
}

func TestProveAndVsOrIsNonEquivalent(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()

	and := g.CreateAnd(a, b)
	or := g.CreateAnd(a.Not(), b.Not()).Not()

	result, cex := sat.Prove(g, and, or)
	require.Equal(t, sat.NonEquivalent, result)
	require.NotNil(t, cex)

	// The witness must make and/or actually differ.
	av, aok := cex[a.Index()]
	bv, bok := cex[b.Index()]
	require.True(t, aok)
	require.True(t, bok)
	require.NotEqual(t, av && bv, av || bv, "counterexample must make AND and OR disagree")
}

func TestProveWithOneConflictBudgetStillSolvesSmallCones(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	and1 := g.CreateAnd(a, b)
	and2 := g.CreateAnd(a, b) // strashed to the same node

	result, _ := sat.ProveWithBudget(g, and1, and2, 1)
	require.Equal(t, sat.Equivalent, result, "identical signals need zero search")
}
