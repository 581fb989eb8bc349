package klut

import (
	"math"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/cut"
)

// epsilon matches cut's own float tolerance (spec.md §4.3).
const epsilon = 0.005

func (m *mapper) isCI(id aig.ID) bool {
	return m.g.IsPI(id) || m.g.IsConst(id)
}

// cutDelay is 1 + the largest arrival time among c's leaves (spec.md
// §4.10 step 3: "delay = 1 + max(leaf delays)").
func (m *mapper) cutDelay(c *cut.Cut) float64 {
	d := 0.0
	for _, leaf := range c.Leaves {
		if a := m.arrival[leaf]; a > d {
			d = a
		}
	}
	return d + 1
}

// derefArea/refArea and derefEdge/refEdge recursively decrement/increment
// leaf reference counts, recursing into a leaf's own best cut only when
// its count just emptied or was about to be used again (spec.md §4.10
// "Area / edge derefed"). deref and ref on the same cut return identical
// values by construction (mirrored recursion).
func (m *mapper) derefArea(c *cut.Cut) float64 {
	area := 1.0
	for _, leaf := range c.Leaves {
		if m.isCI(leaf) {
			continue
		}
		m.refs[leaf]--
		if m.refs[leaf] == 0 {
			area += m.derefArea(m.best[leaf])
		}
	}
	return area
}

func (m *mapper) refArea(c *cut.Cut) float64 {
	area := 1.0
	for _, leaf := range c.Leaves {
		if m.isCI(leaf) {
			continue
		}
		if m.refs[leaf] == 0 {
			area += m.refArea(m.best[leaf])
		}
		m.refs[leaf]++
	}
	return area
}

func (m *mapper) derefEdge(c *cut.Cut) float64 {
	edge := float64(len(c.Leaves))
	for _, leaf := range c.Leaves {
		if m.isCI(leaf) {
			continue
		}
		m.refs[leaf]--
		if m.refs[leaf] == 0 {
			edge += m.derefEdge(m.best[leaf])
		}
	}
	return edge
}

func (m *mapper) refEdge(c *cut.Cut) float64 {
	edge := float64(len(c.Leaves))
	for _, leaf := range c.Leaves {
		if m.isCI(leaf) {
			continue
		}
		if m.refs[leaf] == 0 {
			edge += m.refEdge(m.best[leaf])
		}
		m.refs[leaf]++
	}
	return edge
}

// evalArea/evalEdge are the non-mutating counterparts used to cost a
// candidate cut without touching ref-count bookkeeping: a leaf only adds
// its best cut's cost when that leaf is not already referenced elsewhere
// (spec.md §4.10 step 3, AREA-mode cost).
func (m *mapper) evalArea(c *cut.Cut) float64 {
	area := 1.0
	for _, leaf := range c.Leaves {
		if m.isCI(leaf) {
			continue
		}
		if m.refs[leaf] == 0 {
			area += m.evalArea(m.best[leaf])
		}
	}
	return area
}

func (m *mapper) evalEdge(c *cut.Cut) float64 {
	edge := float64(len(c.Leaves))
	for _, leaf := range c.Leaves {
		if m.isCI(leaf) {
			continue
		}
		if m.refs[leaf] == 0 {
			edge += m.evalEdge(m.best[leaf])
		}
	}
	return edge
}

// areaFlowOf/edgeFlowOf are the estimated-reference flow costs used on
// FLOW-mode passes (spec.md §4.10 "Area / edge flow"): each leaf
// contributes its own best cut's already-cached cost — a plain O(1)
// lookup, not a re-expansion of that leaf's transitive fanin cone — and
// that cost is divided by the leaf's estimated reference count only when
// the leaf is actually referenced elsewhere and not a CI; an unreferenced
// or constant/PI leaf contributes its best cut's cost directly. A leaf is
// always processed (topological order) before its parent within the same
// pass, so m.best[leaf]'s flow-mode fields are already current by the
// time the parent reads them. Totals are capped to avoid overflow.
func (m *mapper) areaFlowOf(c *cut.Cut) float64 {
	total := 1.0
	for _, leaf := range c.Leaves {
		contrib := m.best[leaf].AreaFlow
		if m.refs[leaf] > 0 && !m.isCI(leaf) {
			contrib /= math.Max(m.estRef[leaf], epsilon)
		}
		total += contrib
		if total > 1e32 {
			total = 1e32
		}
	}
	return total
}

func (m *mapper) edgeFlowOf(c *cut.Cut) float64 {
	total := float64(len(c.Leaves))
	for _, leaf := range c.Leaves {
		contrib := m.best[leaf].Edge
		if m.refs[leaf] > 0 && !m.isCI(leaf) {
			contrib /= math.Max(m.estRef[leaf], epsilon)
		}
		total += contrib
		if total > 1e32 {
			total = 1e32
		}
	}
	return total
}
