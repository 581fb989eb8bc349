package cutenum

import (
	"github.com/OSCC-Project/iMap-sub000/cut"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// identityLiteral interns the single-variable function f(x)=x, used to
// seed every PI/constant's own unit cut before any AND combination.
func identityLiteral(tt *ttable.Table) ttable.Literal {
	return tt.Insert(1, []uint64{0x2})
}

// expandBits reconstructs child's truth table (defined over child.Leaves)
// as a table over the superset target (both ascending-sorted), by mapping
// each target minterm down to the corresponding child minterm.
func expandBits(tt *ttable.Table, child *cut.Cut, target []uint32) []uint64 {
	_, words := tt.Get(child.Truth)

	positions := make([]int, len(target))
	for i, leaf := range target {
		positions[i] = indexOf(child.Leaves, leaf)
	}

	n := len(target)
	out := make([]uint64, ttable.NumWords(uint(n)))
	total := 1 << uint(n)
	for m := 0; m < total; m++ {
		childMinterm := 0
		for i, pos := range positions {
			if pos < 0 {
				continue
			}
			if m&(1<<uint(i)) != 0 {
				childMinterm |= 1 << uint(pos)
			}
		}
		if getBit(words, childMinterm) {
			setBit(out, m)
		}
	}
	return out
}

// combineTruth computes the merged cut's truth table by expanding both
// children to the merged leaf order, applying each fanin's complement,
// and ANDing (spec.md §4.4: "applying the gate function (AND)").
func combineTruth(tt *ttable.Table, merged *cut.Cut, a *cut.Cut, compA bool, b *cut.Cut, compB bool) ttable.Literal {
	wa := expandBits(tt, a, merged.Leaves)
	wb := expandBits(tt, b, merged.Leaves)

	n := len(merged.Leaves)
	out := make([]uint64, ttable.NumWords(uint(n)))
	for i := range out {
		va, vb := wa[i], wb[i]
		if compA {
			va = ^va
		}
		if compB {
			vb = ^vb
		}
		out[i] = va & vb
	}
	return tt.Insert(uint(n), out)
}

func indexOf(leaves []uint32, leaf uint32) int {
	for i, l := range leaves {
		if l == leaf {
			return i
		}
	}
	return -1
}

func getBit(words []uint64, i int) bool {
	return words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

func setBit(words []uint64, i int) {
	words[i/64] |= uint64(1) << uint(i%64)
}
