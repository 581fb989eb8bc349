package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/aiger"
	"github.com/OSCC-Project/iMap-sub000/config"
)

func writeSampleAiger(t *testing.T) string {
	t.Helper()
	g := aig.NewGraph()
	a, b := g.CreatePI(), g.CreatePI()
	f1 := g.CreateAnd(a, b).Not()
	f2 := g.CreateAnd(a, f1).Not()
	f3 := g.CreateAnd(b, f1).Not()
	g.CreatePO(g.CreateAnd(f2, f3).Not())

	path := filepath.Join(t.TempDir(), "xor.aag")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, aiger.WriteASCII(f, g))
	return path
}

func TestDispatchRejectsUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	s := newShell(config.Default(), &out)
	s.dispatch("frobnicate")
	require.Contains(t, out.String(), "unknown command")
}

func TestDispatchRejectsCommandsBeforeReadAiger(t *testing.T) {
	var out bytes.Buffer
	s := newShell(config.Default(), &out)
	s.dispatch("balance")
	require.Contains(t, out.String(), "no AIG loaded")
}

func TestReadAigerThenPrintStats(t *testing.T) {
	path := writeSampleAiger(t)
	var out bytes.Buffer
	s := newShell(config.Default(), &out)

	s.dispatch("read_aiger -f " + path)
	require.NotNil(t, s.mgr)

	out.Reset()
	s.dispatch("print_stats")
	require.Contains(t, out.String(), "pis=2")
	require.Contains(t, out.String(), "pos=1")
}

func TestRewriteRejectsOutOfRangeK(t *testing.T) {
	path := writeSampleAiger(t)
	var out bytes.Buffer
	s := newShell(config.Default(), &out)
	s.dispatch("read_aiger -f " + path)

	out.Reset()
	s.dispatch("rewrite -C 99 -P 8")
	require.Contains(t, out.String(), "out of range")
}

func TestMapFPGAThenWriteVerilogProducesAModule(t *testing.T) {
	path := writeSampleAiger(t)
	var out bytes.Buffer
	s := newShell(config.Default(), &out)
	s.dispatch("read_aiger -f " + path)
	s.dispatch("map_fpga -C 6 -P 8")
	require.NotNil(t, lastMapping)

	verilogPath := filepath.Join(t.TempDir(), "out.v")
	s.dispatch("write_verilog -f " + verilogPath)

	data, err := os.ReadFile(verilogPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "module "))
}

func TestHistoryCommitShowAndRestore(t *testing.T) {
	path := writeSampleAiger(t)
	var out bytes.Buffer
	s := newShell(config.Default(), &out)
	s.dispatch("read_aiger -f " + path)

	s.dispatch("history -c")
	s.dispatch("balance")

	out.Reset()
	s.dispatch("history -s")
	require.Contains(t, out.String(), "0: snapshot-0")

	require.NoError(t, s.mgr.RestoreHistory(0))
}

func TestRunProcessesMultipleLinesFromReader(t *testing.T) {
	path := writeSampleAiger(t)
	var out bytes.Buffer
	s := newShell(config.Default(), &out)

	script := strings.NewReader("read_aiger -f " + path + "\nbalance\nprint_stats\n")
	s.run(script)
	require.Contains(t, out.String(), "pis=2")
}
