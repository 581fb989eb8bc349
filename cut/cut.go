// Package cut: cut.go — the Cut type: leaves, signature, and payload.
package cut

import (
	"sort"

	"github.com/OSCC-Project/iMap-sub000/internal/bitops"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// MaxK is the largest supported cut size (spec.md §6: K∈[2,8]).
const MaxK = 8

// MaxL is the largest supported cut-set capacity (spec.md §6: L∈[6,20];
// §4.3 additionally caps the in-memory cut-set at 12).
const MaxL = 12

// ID is a node index (aig.ID, repeated here to avoid cut depending on aig
// for nothing but a type alias).
type ID = uint32

// Cut is one candidate cut: a leaf set plus its cost payload.
type Cut struct {
	Leaves []ID // sorted ascending, len <= K
	Sig    uint64

	HasTruth bool
	Truth    ttable.Literal

	Delay     float64
	Area      float64
	AreaFlow  float64
	Edge      float64
	Power     float64
	Useless   bool // marked when a later pass supersedes this cut's role
}

// NewLeafCut builds the single-node trivial cut {n} (used for PIs,
// constants, and as the unit cut every AND node's cut-set always carries).
func NewLeafCut(n ID) *Cut {
	return &Cut{Leaves: []ID{n}, Sig: bitops.SigBit(n)}
}

// Signature computes the containment signature of an explicit leaf slice.
func Signature(leaves []ID) uint64 {
	var sig uint64
	for _, l := range leaves {
		sig |= bitops.SigBit(l)
	}
	return sig
}

// Dominates reports whether c's leaves are a subset of other's — in which
// case other is redundant in the presence of c (spec.md §3).
func (c *Cut) Dominates(other *Cut) bool {
	if len(c.Leaves) > len(other.Leaves) {
		return false
	}
	if c.Sig&^other.Sig != 0 {
		return false // fast reject: some leaf of c is provably absent from other
	}
	return isSubset(c.Leaves, other.Leaves)
}

// isSubset reports whether a ⊆ b; both slices are sorted ascending.
func isSubset(a, b []ID) bool {
	i := 0
	for _, x := range a {
		for i < len(b) && b[i] < x {
			i++
		}
		if i >= len(b) || b[i] != x {
			return false
		}
		i++
	}
	return true
}

// Merge unions c1 and c2's leaves into a new cut, rejecting the merge if
// the result would exceed k leaves. The signature fast-reject of spec.md
// §4.4 (popcount(sig1|sig2) > k ⇒ impossible) is applied before doing the
// O(k) set union.
func Merge(c1, c2 *Cut, k int) (*Cut, bool) {
	sig := c1.Sig | c2.Sig
	if bitops.PopCount64(sig) > k {
		return nil, false
	}
	leaves := unionSorted(c1.Leaves, c2.Leaves)
	if len(leaves) > k {
		return nil, false
	}
	return &Cut{Leaves: leaves, Sig: sig}, true
}

func unionSorted(a, b []ID) []ID {
	out := make([]ID, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// IsTrivial reports whether c is the single-node unit cut for n.
func (c *Cut) IsTrivial(n ID) bool {
	return len(c.Leaves) == 1 && c.Leaves[0] == n
}

// sortLeaves is a defensive helper for cuts assembled out of order (tests,
// manual construction); Merge/NewLeafCut never need it.
func sortLeaves(leaves []ID) {
	sort.Slice(leaves, func(i, j int) bool { return leaves[i] < leaves[j] })
}
