package ttable

import (
	"encoding/binary"

	"github.com/OSCC-Project/iMap-sub000/internal/bitops"
)

// Literal is an index into a Table, packed as 2*index + wasComplemented,
// matching spec.md §4.2.
type Literal uint32

// entry is one interned (always-normal) truth table: NVars variables,
// stored as ceil(2^NVars/64) words, word 0's low bit always 0.
type entry struct {
	nVars uint
	words []uint64
}

// Table is the global truth-table cache. Zero value is ready to use.
type Table struct {
	entries []entry
	index   map[string]uint32 // normalized words (as bytes) -> entry index
}

// NewTable returns an empty cache.
func NewTable() *Table {
	return &Table{index: make(map[string]uint32)}
}

// NumWords returns ceil(2^nVars/64), the word count for an nVars-variable
// truth table (minimum 1 word for nVars<=6).
func NumWords(nVars uint) int {
	if nVars <= 6 {
		return 1
	}
	return 1 << (nVars - 6)
}

func key(words []uint64) string {
	b := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
	return string(b)
}

// Insert interns tt (nVars variables) and returns its stable literal.
// If tt's low bit (the all-zero-input row) is 1, the complemented table is
// stored instead and the returned literal carries the complement flag —
// "store only normal tables", per spec.md §4.2.
func (t *Table) Insert(nVars uint, tt []uint64) Literal {
	if t.index == nil {
		t.index = make(map[string]uint32)
	}
	complemented := len(tt) > 0 && tt[0]&1 != 0
	norm := make([]uint64, len(tt))
	for i, w := range tt {
		if complemented {
			w = ^w
		}
		norm[i] = w
	}
	trimTail(norm, nVars)

	k := key(norm)
	idx, ok := t.index[k]
	if !ok {
		idx = uint32(len(t.entries))
		stored := make([]uint64, len(norm))
		copy(stored, norm)
		t.entries = append(t.entries, entry{nVars: nVars, words: stored})
		t.index[k] = idx
	}

	lit := Literal(idx) << 1
	if complemented {
		lit |= 1
	}
	return lit
}

// trimTail clears any bits beyond 2^nVars in the last word, so two tables
// that differ only in their unused tail bits still intern identically.
func trimTail(words []uint64, nVars uint) {
	if nVars >= 6 {
		return
	}
	validBits := uint(1) << nVars
	mask := (uint64(1) << validBits) - 1
	if len(words) > 0 {
		words[0] &= mask
	}
}

// Get reconstructs the truth table for lit.
func (t *Table) Get(lit Literal) (nVars uint, tt []uint64) {
	idx := uint32(lit >> 1)
	e := t.entries[idx]
	out := make([]uint64, len(e.words))
	if lit&1 != 0 {
		for i, w := range e.words {
			out[i] = ^w
		}
		trimTail(out, e.nVars)
	} else {
		copy(out, e.words)
	}
	return e.nVars, out
}

// NVars returns the variable count stored for lit, without reconstructing
// the table's words.
func (t *Table) NVars(lit Literal) uint {
	return t.entries[uint32(lit>>1)].nVars
}

// PopCountDiff reports how many bit positions differ between two literals'
// reconstructed tables of equal NVars. It is O(words), not O(2^n).
func (t *Table) PopCountDiff(a, b Literal) int {
	_, wa := t.Get(a)
	_, wb := t.Get(b)
	diff := 0
	for i := range wa {
		diff += bitops.PopCount64(wa[i] ^ wb[i])
	}
	return diff
}
