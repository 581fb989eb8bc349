// Package aig_test exercises the strashed AIG core: structural hashing,
// trivial simplification, substitution, and the NAND-XOR / substitute
// end-to-end scenario from spec.md §8.
package aig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

func TestCreateAnd_TrivialSimplifications(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()

	require.Equal(t, a, g.CreateAnd(a, a), "a∧a=a")
	require.Equal(t, aig.ConstFalse, g.CreateAnd(a, a.Not()), "a∧¬a=0")
	require.Equal(t, aig.ConstFalse, g.CreateAnd(a, aig.ConstFalse), "a∧0=0")
	require.Equal(t, a, g.CreateAnd(a, aig.ConstTrue), "a∧1=a")
}

func TestCreateAnd_Strashing(t *testing.T) {
	g := aig.NewGraph()
	a, b := g.CreatePI(), g.CreatePI()

	s1 := g.CreateAnd(a, b)
	s2 := g.CreateAnd(a, b)
	require.Equal(t, s1, s2, "identical fanins must hash to the same node")
	require.Equal(t, 4, g.Size(), "no duplicate node allocated (constant + 2 PIs + 1 AND)")

	// Fanin order must not matter: CreateAnd(b,a) hits the same node as
	// CreateAnd(a,b) once ordering is applied.
	s3 := g.CreateAnd(b, a)
	require.Equal(t, s1, s3)
}

func TestNandXorScenario(t *testing.T) {
	// spec.md §8 scenario 1. Each substitution is applied to a freshly
	// built copy of the network.
	build := func() (*aig.Graph, aig.Signal, aig.Signal) {
		g := aig.NewGraph()
		a, b := g.CreatePI(), g.CreatePI()

		f1 := g.CreateAnd(a, b).Not()   // ¬(a∧b)
		f2 := g.CreateAnd(a, f1).Not()  // ¬(a∧f1)
		f3 := g.CreateAnd(b, f1).Not()  // ¬(b∧f1)
		f4 := g.CreateAnd(f2, f3).Not() // ¬(f2∧f3)
		g.CreatePO(f4)
		return g, a, f3
	}

	g, _, _ := build()
	require.Equal(t, "0110", truthTable2(g, g.PO(0)), "f4 must compute XOR(a,b)")

	g, a, _ := build()
	g.SubstituteNode(a.Index(), aig.ConstTrue)
	require.Equal(t, "0011", truthTable2(g, g.PO(0)), "substitute(a,1) => ¬b")

	g, _, f3 := build()
	g.SubstituteNode(f3.Index(), aig.ConstFalse)
	require.Equal(t, "0010", truthTable2(g, g.PO(0)), "substitute(f3,0) => a∧¬b")
}

func TestMaj3Scenario(t *testing.T) {
	g := aig.NewGraph()
	a, b, c := g.CreatePI(), g.CreatePI(), g.CreatePI()

	ab := g.CreateAnd(a, b)                   // a∧b
	notAB := g.CreateAnd(a.Not(), b.Not())    // ¬a∧¬b
	inner := g.CreateAnd(c, notAB.Not())      // c∧¬(¬a∧¬b)
	out := g.CreateAnd(ab.Not(), inner.Not()).Not() // (a∧b) ∨ inner

	g.CreatePO(out)

	require.Equal(t, "11101000", truthTable3(g, g.PO(0)))
}

// simulate evaluates s for the given PI assignment (indexed by PI creation
// order), memoizing per (node index) to keep each call linear.
func simulate(g *aig.Graph, s aig.Signal, assign []bool) bool {
	memo := make(map[aig.ID]bool)
	var piOrdinal = make(map[aig.ID]int, len(assign))
	for i := 0; i < g.NumPIs(); i++ {
		piOrdinal[g.PI(i)] = i
	}

	var eval func(idx aig.ID) bool
	eval = func(idx aig.ID) bool {
		if v, ok := memo[idx]; ok {
			return v
		}
		var v bool
		switch {
		case g.IsConst(idx):
			v = false
		case g.IsPI(idx):
			v = assign[piOrdinal[idx]]
		default:
			c0, c1 := g.Children(idx)
			v = (eval(c0.Index()) != c0.IsComplement()) && (eval(c1.Index()) != c1.IsComplement())
		}
		memo[idx] = v
		return v
	}
	return eval(s.Index()) != s.IsComplement()
}

// truthTable2 lists s's value from minterm 3 down to minterm 0, where PI 0
// (a) is the least significant bit of the minterm index.
func truthTable2(g *aig.Graph, s aig.Signal) string {
	out := make([]byte, 0, 4)
	for _, assign := range [][]bool{{true, true}, {false, true}, {true, false}, {false, false}} {
		if simulate(g, s, assign) {
			out = append(out, '1')
		} else {
			out = append(out, '0')
		}
	}
	return string(out)
}

func truthTable3(g *aig.Graph, s aig.Signal) string {
	out := make([]byte, 0, 8)
	for i := 7; i >= 0; i-- {
		assign := []bool{i&4 != 0, i&2 != 0, i&1 != 0}
		if simulate(g, s, assign) {
			out = append(out, '1')
		} else {
			out = append(out, '0')
		}
	}
	return string(out)
}
