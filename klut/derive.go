package klut

import "github.com/OSCC-Project/iMap-sub000/aig"

// derive walks the mapped graph once in reverse topological order from
// the POs, emitting one Cell per referenced non-CI node using its
// installed best cut (spec.md §4.10 "Final derivation").
func (m *mapper) derive() *Mapping {
	referenced := make([]bool, m.g.Size())
	m.g.ForEachPO(func(i int, s aig.Signal) {
		referenced[s.Index()] = true
	})

	var cells []Cell
	for idx := aig.ID(m.g.Size()) - 1; ; idx-- {
		if referenced[idx] && m.g.IsAnd(idx) {
			best := m.best[idx]
			cell := Cell{
				Root:     idx,
				Leaves:   append([]aig.ID(nil), best.Leaves...),
				HasTruth: best.HasTruth,
				Truth:    best.Truth,
			}
			cells = append(cells, cell)
			for _, leaf := range best.Leaves {
				if !m.isCI(leaf) {
					referenced[leaf] = true
				}
			}
		}
		if idx == 0 {
			break
		}
	}

	pos := make([]aig.Signal, m.g.NumPOs())
	m.g.ForEachPO(func(i int, s aig.Signal) {
		pos[i] = s
	})

	delay := 0.0
	for _, s := range pos {
		if a := m.arrival[s.Index()]; a > delay {
			delay = a
		}
	}

	return &Mapping{Cells: cells, POs: pos, Delay: delay, Truths: m.tt}
}
