package aiger

import (
	"fmt"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

// header is the M I L O A line. Latches are not supported (spec.md's
// Non-goals exclude sequential synthesis beyond latch carry-through, and
// this core has no latch-carrying node type); a nonzero L is rejected as
// malformed input (spec.md §7: "the front-end rejects before calling the
// core").
type header struct {
	M, I, L, O, A int
}

func (h header) validate() error {
	if h.L != 0 {
		return fmt.Errorf("aiger: sequential AIGER (L=%d latches) unsupported", h.L)
	}
	if h.M != h.I+h.A {
		return fmt.Errorf("aiger: header M=%d does not match I+A=%d", h.M, h.I+h.A)
	}
	return nil
}

// literalOf returns s's AIGER literal given the internal-id-to-var table.
func literalOf(varOf []uint32, s aig.Signal) uint32 {
	if s.Index() == 0 {
		if s.IsComplement() {
			return 1
		}
		return 0
	}
	lit := varOf[s.Index()] << 1
	if s.IsComplement() {
		lit |= 1
	}
	return lit
}

// buildVarTable assigns AIGER variables 1..I to g's PIs in creation order,
// then I+1..I+A to its AND gates in ascending (topological) order, the
// PIs-then-gates numbering spec.md §6 requires.
func buildVarTable(g *aig.Graph) []uint32 {
	table := make([]uint32, g.Size())
	v := uint32(0)
	g.ForEachPI(func(id aig.ID) {
		v++
		table[id] = v
	})
	g.ForEachGate(func(id aig.ID) {
		v++
		table[id] = v
	})
	return table
}
