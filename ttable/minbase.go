package ttable

import "github.com/OSCC-Project/iMap-sub000/internal/bitops"

// MinBase drops every support variable tt does not actually depend on,
// compacting the remaining variables down to 0..k-1 in their original
// relative order. It returns the compacted table, its new variable count,
// and a mask with bit i set iff original variable i survived, which tells
// a caller which leaves the compacted table's variables correspond to.
func MinBase(nVars uint, tt []uint64) (out []uint64, newVars uint, supportMask uint32) {
	live := make([]uint, 0, nVars)
	for v := uint(0); v < nVars; v++ {
		if !bitops.CofactorEqual(tt, nVars, v) {
			live = append(live, v)
			supportMask |= 1 << v
		}
	}
	if len(live) == int(nVars) {
		return append([]uint64(nil), tt...), nVars, supportMask
	}

	newVars = uint(len(live))
	out = make([]uint64, NumWords(newVars))
	nBits := 1 << newVars
	for row := 0; row < nBits; row++ {
		// Expand the compacted row index into the original input pattern by
		// scattering its bits across the surviving variable positions.
		orig := 0
		for i, v := range live {
			if row&(1<<uint(i)) != 0 {
				orig |= 1 << v
			}
		}
		if bitAt(tt, orig) {
			out[row/64] |= 1 << uint(row%64)
		}
	}
	return out, newVars, supportMask
}

func bitAt(tt []uint64, pos int) bool {
	return tt[pos/64]&(1<<uint(pos%64)) != 0
}
