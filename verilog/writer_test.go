package verilog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/klut"
	"github.com/OSCC-Project/iMap-sub000/verilog"
)

func TestWriteEmitsOnePortPerPIAndPO(t *testing.T) {
	g := aig.NewGraph()
	a, b := g.CreatePI(), g.CreatePI()
	and := g.CreateAnd(a, b)
	g.CreatePO(and)

	m := klut.Run(g, klut.DefaultParams(), nil)

	var buf strings.Builder
	require.NoError(t, verilog.Write(&buf, "top", g, m))
	out := buf.String()

	require.Contains(t, out, "module top(")
	require.Contains(t, out, "input pi0;")
	require.Contains(t, out, "input pi1;")
	require.Contains(t, out, "output po0;")
	require.Contains(t, out, "endmodule")
}

func TestWriteEscapesNonSimpleModuleName(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI()
	g.CreatePO(a)
	m := klut.Run(g, klut.DefaultParams(), nil)

	var buf strings.Builder
	require.NoError(t, verilog.Write(&buf, "my-top", g, m))
	require.Contains(t, buf.String(), `\my-top `)
}
