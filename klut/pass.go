package klut

import (
	"math"
	"sort"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/cut"
)

// processNode recomputes n's cut costs under the pass's mode, splices in
// its choice-class members' candidates if n is a representative, and
// installs the new best cut (spec.md §4.10 "One pass", steps 3-4).
func (m *mapper) processNode(n aig.ID, pk passKind) {
	mode := modeFor(pk)

	if pk == passDelay {
		m.estRef[n] = float64(m.refs[n])
	} else if mode == cut.ModeFlow {
		m.estRef[n] = (float64(m.refs[n]) + 2*m.estRef[n]) / 3
	}

	old := m.best[n]
	if mode != cut.ModeDelay && old != nil && m.refs[n] > 0 {
		m.derefArea(old)
		m.derefEdge(old)
	}

	set := m.cuts.Get(n)
	for _, c := range set.All() {
		if c.IsTrivial(n) {
			continue
		}
		c.Delay = m.cutDelay(c)
		if mode == cut.ModeFlow {
			c.AreaFlow = m.areaFlowOf(c)
			c.Edge = m.edgeFlowOf(c)
		} else {
			c.Area = m.evalArea(c)
			c.Edge = m.evalEdge(c)
		}
	}

	if members, ok := m.classOf[n]; ok {
		m.spliceChoices(n, set, members, mode)
	}

	all := set.All()
	sort.Slice(all, func(i, j int) bool { return cut.Less(mode, all[i], all[j]) })

	best := m.pickBest(set, n)
	m.best[n] = best
	m.arrival[n] = best.Delay

	if mode != cut.ModeDelay && m.refs[n] > 0 {
		m.refArea(best)
		m.refEdge(best)
	}
}

// pickBest returns the cheapest cut (the set is already sorted under the
// current mode) whose delay meets n's required time, falling back to the
// cheapest cut outright if none do (spec.md §4.10 step 3's "required(n) +
// ε" gate — with integer-valued delays and required times, the ε
// tolerance alone already covers the boundary case, so there is no
// separate zero_gain branch here; see DESIGN.md).
func (m *mapper) pickBest(set *cut.Set, n aig.ID) *cut.Cut {
	req := m.required[n]
	var fallback *cut.Cut
	for _, c := range set.All() {
		if c.IsTrivial(n) {
			continue
		}
		if fallback == nil {
			fallback = c
		}
		if c.Delay <= req+epsilon {
			return c
		}
	}
	return fallback
}

// spliceChoices folds each class member's candidate cuts into n's own
// cut-set, flipping each candidate's truth-table polarity by the class's
// phase XOR (the same convention dch/synth.go uses to decide whether a
// candidate is n's equal or its complement), then truncates and
// re-installs the unit cut (spec.md §4.10 step 4).
func (m *mapper) spliceChoices(n aig.ID, set *cut.Set, members []aig.ID, mode cut.Mode) {
	for _, mem := range members {
		memberSet := m.cuts.Get(mem)
		if memberSet == nil {
			continue
		}
		flip := m.g.Phase(mem) != m.g.Phase(n)
		for _, c := range memberSet.All() {
			if c.IsTrivial(mem) {
				continue
			}
			adapted := &cut.Cut{
				Leaves:   append([]aig.ID(nil), c.Leaves...),
				Sig:      c.Sig,
				HasTruth: c.HasTruth,
				Delay:    m.cutDelay(c),
			}
			if c.HasTruth {
				lit := c.Truth
				if flip {
					lit ^= 1
				}
				adapted.Truth = lit
			}
			if mode == cut.ModeFlow {
				adapted.AreaFlow = m.areaFlowOf(adapted)
				adapted.Edge = m.edgeFlowOf(adapted)
			} else {
				adapted.Area = m.evalArea(adapted)
				adapted.Edge = m.evalEdge(adapted)
			}
			set.Insert(adapted)
		}
	}
	set.Limit(m.p.L - 1)
	unit := cut.NewLeafCut(n)
	unit.HasTruth = true
	unit.Truth = m.tt.Insert(1, []uint64{0x2}) // f(x)=x, mirrors cutenum's own unit-cut seeding
	unit.Delay = m.arrival[n]
	set.Insert(unit)
}

// recomputeRequired propagates required times from each PO's achieved
// delay back through every mapped cut, in strict descending node-index
// order. Because a cut's leaves always have a smaller index than its
// root (and a choice representative's new index always exceeds every
// other member of its class, per dupChoices), a single descending sweep
// guarantees every node's required time is fully accumulated from its
// users before it is visited — no separate reverse-topological pass is
// needed (spec.md §4.10 step 5).
func (m *mapper) recomputeRequired() {
	globalDelay := 0.0
	m.g.ForEachPO(func(i int, s aig.Signal) {
		if a := m.arrival[s.Index()]; a > globalDelay {
			globalDelay = a
		}
	})

	for i := range m.required {
		m.required[i] = math.Inf(1)
	}
	m.g.ForEachPO(func(i int, s aig.Signal) {
		idx := s.Index()
		if globalDelay < m.required[idx] {
			m.required[idx] = globalDelay
		}
	})

	reprOf := make(map[aig.ID]aig.ID, len(m.classOf))
	for r, members := range m.classOf {
		for _, mem := range members {
			reprOf[mem] = r
		}
	}

	for idx := aig.ID(m.g.Size()) - 1; ; idx-- {
		if r, ok := reprOf[idx]; ok {
			if m.required[r] < m.required[idx] {
				m.required[idx] = m.required[r]
			}
		}
		if m.g.IsAnd(idx) {
			best := m.best[idx]
			req := m.required[idx]
			if !math.IsInf(req, 1) {
				for _, leaf := range best.Leaves {
					if req-1 < m.required[leaf] {
						m.required[leaf] = req - 1
					}
				}
			}
		}
		if idx == 0 {
			break
		}
	}
}
