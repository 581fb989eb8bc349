package dch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/sat"
)

// TestRefineSeparatesCoincidentallyIdenticalClass engineers the exact
// situation spec.md §4.6 step 2 describes: two functionally distinct
// gates land in the same simulation class (here by construction, rather
// than by unlucky random sampling), a counter-example distinguishes them,
// and refine must fold that pattern back in and split the class rather
// than merely dropping the one pair that was SAT-checked.
func TestRefineSeparatesCoincidentallyIdenticalClass(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()

	x := g.CreateAnd(a, b) // a & b
	y := g.CreateAnd(a, c) // a & c -- distinct function from x

	words := 2
	sv := &simVectors{words: words, vec: make([][]uint64, g.Size())}
	sv.vec[0] = make([]uint64, words)
	// Craft a,b,c's vectors so that a&b and a&c simulate identically
	// (all bits zero) despite being different functions: a is all-zero.
	sv.vec[a.Index()] = []uint64{0, 0}
	sv.vec[b.Index()] = []uint64{0xFF, 0}
	sv.vec[c.Index()] = []uint64{0, 0xFF}
	sv.vec[x.Index()] = []uint64{0, 0}
	sv.vec[y.Index()] = []uint64{0, 0}

	repr := classify(g, sv)
	require.Equal(t, repr[a.Index()], repr[x.Index()], "x's all-zero vector coincides with a or a known-zero class")
	require.Equal(t, repr[x.Index()], repr[y.Index()], "x and y simulate identically before refinement")

	// Counter-example: a=1, b=1, c=0 distinguishes x=1 from y=0.
	cex := sat.CounterExample{a.Index(): true, b.Index(): true, c.Index(): false}

	refined := refine(g, sv, cex)
	require.NotEqual(t, refined[x.Index()], refined[y.Index()],
		"the counter-example must separate x and y once folded into the simulation")
}

// TestPropagateCounterExampleComputesGateValues checks the mark-B
// propagation step in isolation: a gate's mark-B bit must equal the AND
// of its (polarity-adjusted) children's mark-B bits under the assignment.
func TestPropagateCounterExampleComputesGateValues(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	n := g.CreateAnd(a, b.Not()) // a & !b

	propagateCounterExample(g, sat.CounterExample{a.Index(): true, b.Index(): false})
	require.True(t, g.MarkB(n.Index()))

	propagateCounterExample(g, sat.CounterExample{a.Index(): true, b.Index(): true})
	require.False(t, g.MarkB(n.Index()))
}
