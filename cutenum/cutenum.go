package cutenum

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/cut"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// Params bounds cut enumeration (spec.md §6: K∈[2,8], L∈[6,20]).
type Params struct {
	K            int
	L            int
	ComputeTruth bool
}

// Map holds one cut-set per node, indexed by node ID.
type Map struct {
	sets []*cut.Set
}

// NewMap allocates a Map sized for an arena with `size` node slots.
func NewMap(size int) *Map { return &Map{sets: make([]*cut.Set, size)} }

// Get returns n's cut-set, or nil if n hasn't been enumerated.
func (m *Map) Get(n aig.ID) *cut.Set { return m.sets[n] }

func (m *Map) set(n aig.ID, s *cut.Set) { m.sets[n] = s }

// Enumerate computes priority cuts for every live node of g, visiting
// gates in ascending (topological) index order so that every fanin's
// cut-set is already available (spec.md §4.4, §5 "Ordering").
//
// tt may be nil when p.ComputeTruth is false.
func Enumerate(g *aig.Graph, p Params, tt *ttable.Table) *Map {
	m := NewMap(g.Size())

	m.set(0, seedUnit(0, p.L, p.ComputeTruth, tt))
	g.ForEachPI(func(n aig.ID) {
		m.set(n, seedUnit(n, p.L, p.ComputeTruth, tt))
	})

	g.ForEachGate(func(n aig.ID) {
		c0, c1 := g.Children(n)
		s0, s1 := m.Get(c0.Index()), m.Get(c1.Index())

		out := cut.NewSet(p.L)
		for _, a := range s0.All() {
			for _, b := range s1.All() {
				merged, ok := cut.Merge(a, b, p.K)
				if !ok {
					continue
				}
				if p.ComputeTruth {
					merged.HasTruth = true
					merged.Truth = combineTruth(tt, merged, a, c0.IsComplement(), b, c1.IsComplement())
				}
				out.Insert(merged)
			}
		}
		out.Limit(p.L - 1)

		unit := cut.NewLeafCut(n)
		if p.ComputeTruth {
			unit.HasTruth = true
			unit.Truth = identityLiteral(tt)
		}
		out.Insert(unit)

		m.set(n, out)
	})

	return m
}

func seedUnit(n aig.ID, l int, computeTruth bool, tt *ttable.Table) *cut.Set {
	s := cut.NewSet(l)
	c := cut.NewLeafCut(n)
	if computeTruth {
		c.HasTruth = true
		c.Truth = identityLiteral(tt)
	}
	s.Insert(c)
	return s
}
