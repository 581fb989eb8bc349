package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/dot"
	"github.com/OSCC-Project/iMap-sub000/klut"
)

func TestWriteEmitsDigraphWithCellsAndPIs(t *testing.T) {
	g := aig.NewGraph()
	a, b := g.CreatePI(), g.CreatePI()
	g.CreatePO(g.CreateAnd(a, b))

	m := klut.Run(g, klut.DefaultParams(), nil)

	var buf strings.Builder
	require.NoError(t, dot.Write(&buf, "m", g, m))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "digraph m {\n"))
	require.Contains(t, out, "pi0")
	require.Contains(t, out, "pi1")
	require.Contains(t, out, "po0")
	require.Contains(t, out, "}\n")
}
