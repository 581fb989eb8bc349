package cutenum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/cutenum"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// buildNandXor reproduces spec.md §8 scenario 1: f4 = XOR(a,b) via four
// NANDs, PO = f4.
func buildNandXor(t *testing.T) (*aig.Graph, aig.ID) {
	t.Helper()
	g := aig.NewGraph()
	a := g.CreatePI()
	b := g.CreatePI()

	f1 := g.CreateAnd(a, b).Not()
	f2 := g.CreateAnd(a, f1).Not()
	f3 := g.CreateAnd(b, f1).Not()
	f4 := g.CreateAnd(f2, f3).Not()
	g.CreatePO(f4)
	return g, f4.Index()
}

func literalToBinary(tt *ttable.Table, lit ttable.Literal, nVars uint) string {
	_, words := tt.Get(lit)
	out := make([]byte, 1<<nVars)
	for i := range out {
		bit := (words[i/64] >> uint(i%64)) & 1
		out[len(out)-1-i] = '0' + byte(bit)
	}
	return string(out)
}

func TestEnumerate_NandXorTwoInputCut(t *testing.T) {
	g, f4 := buildNandXor(t)
	tt := ttable.NewTable()

	m := cutenum.Enumerate(g, cutenum.Params{K: 2, L: 8, ComputeTruth: true}, tt)

	cs := m.Get(f4)
	require.NotNil(t, cs)

	var best *struct {
		leaves []uint32
		lit    ttable.Literal
	}
	for _, c := range cs.All() {
		if len(c.Leaves) == 2 {
			best = &struct {
				leaves []uint32
				lit    ttable.Literal
			}{c.Leaves, c.Truth}
			break
		}
	}
	require.NotNil(t, best, "expected a 2-leaf cut to exist for f4 (K=2 covers the whole cone)")
	// The cut belongs to f4's node, i.e. the uncomplemented AND, which is
	// XNOR(a,b); the PO's complement edge turns it into XOR.
	require.Equal(t, "1001", literalToBinary(tt, best.lit, 2))
}

func TestEnumerate_RespectsCapacityAndUnitCut(t *testing.T) {
	g, f4 := buildNandXor(t)
	m := cutenum.Enumerate(g, cutenum.Params{K: 2, L: 3}, nil)

	cs := m.Get(f4)
	require.LessOrEqual(t, cs.Len(), 3)

	found := false
	for _, c := range cs.All() {
		if c.IsTrivial(f4) {
			found = true
		}
	}
	require.True(t, found, "the unit cut {n} must always survive enumeration")
}
