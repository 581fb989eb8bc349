package ttable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/ttable"
)

func TestInsertIsIdempotentUpToComplement(t *testing.T) {
	tab := ttable.NewTable()

	xor2 := []uint64{0x6} // 0110, 2-variable XOR
	lit1 := tab.Insert(2, xor2)
	lit2 := tab.Insert(2, xor2)
	require.Equal(t, lit1, lit2)

	_, reconstructed := tab.Get(lit1)
	require.Equal(t, xor2, reconstructed)

	lit3 := tab.Insert(2, reconstructed)
	require.Equal(t, lit1, lit3, "Insert(Insert(t).reconstruct) == Insert(t)")
}

func TestInsertStoresOnlyNormalForm(t *testing.T) {
	tab := ttable.NewTable()

	and2 := []uint64{0x8}    // 1000
	notAnd2 := []uint64{0x7} // 0111, complement, low bit set

	litAnd := tab.Insert(2, and2)
	litNot := tab.Insert(2, notAnd2)

	require.Equal(t, litAnd>>1, litNot>>1, "complement of an existing table reuses its entry")
	require.NotEqual(t, litAnd&1, litNot&1)
}

func TestMinBaseDropsUnusedVariable(t *testing.T) {
	// f(a,b) = a, independent of b: 1010 as a 2-var table (b is the LSB-adjacent var).
	tt := []uint64{0xA}
	out, newVars, mask := ttable.MinBase(2, tt)

	require.Equal(t, uint(1), newVars)
	require.Equal(t, uint32(1<<0), mask, "only variable 0 (a) survives")
	require.Equal(t, []uint64{0x2}, out)
}
