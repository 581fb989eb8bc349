package choice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/choice"
)

func TestSetChoiceRejectsFaninLoop(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	c := g.CreatePI()      // independent of n, created before it so c < n
	g.CreatePO(c)          // gives c a fanout, which IsRepr requires
	n := g.CreateAnd(a, b) // n depends on a, b

	v := choice.NewView(g)

	// a is in n's transitive fanin, so n cannot become a choice of a.
	require.False(t, v.SetChoice(n.Index(), a.Index()))

	// a genuinely independent, lower-indexed node can become n's representative.
	require.True(t, v.SetChoice(n.Index(), c.Index()))
	require.True(t, v.IsRepr(c.Index()))
	require.Equal(t, c.Index(), v.Repr(n.Index()))
}

func TestSetChoiceRejectsHigherOrEqualRepr(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	v := choice.NewView(g)

	require.False(t, v.SetChoice(a.Index(), b.Index()), "repr index must be < n")
}

func TestRecognizeMux(t *testing.T) {
	g := aig.NewGraph()
	ctrlS := g.CreatePI()
	thenS := g.CreatePI()
	elsS := g.CreatePI()

	m0 := g.CreateAnd(ctrlS, thenS)
	m1 := g.CreateAnd(ctrlS.Not(), elsS)
	top := g.CreateAnd(m0.Not(), m1.Not()) // top is f', f = NOT(top)

	ctrl, then, els, ok := choice.RecognizeMux(g, top.Index())
	require.True(t, ok)
	require.Equal(t, ctrlS.Index(), ctrl.Index())
	require.Equal(t, thenS, then)
	require.Equal(t, elsS, els)
}

func TestDupDFSOrdersRepresentativeAfterClassMembers(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()
	n1 := g.CreateAnd(a, b)
	n2 := g.CreateAnd(a, b.Not())
	g.CreatePO(n1)
	g.CreatePO(n2)

	v := choice.NewView(g)
	// Make n1 (the earlier PO driver) a choice of n2's... actually n2 > n1
	// here, so n1 can become the representative and n2 the choice member.
	require.True(t, v.SetChoice(n2.Index(), n1.Index()))

	out, pos := choice.DupDFS(g, v)
	require.Len(t, pos, 2)
	require.Greater(t, out.Size(), 0)
	// pos[0] drives the representative n1, pos[1] the member n2.
	require.Greater(t, pos[0].Index(), pos[1].Index(), "representative must get the higher new index")
}
