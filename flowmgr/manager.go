package flowmgr

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/balance"
	"github.com/OSCC-Project/iMap-sub000/choice"
	"github.com/OSCC-Project/iMap-sub000/config"
	"github.com/OSCC-Project/iMap-sub000/dch"
	"github.com/OSCC-Project/iMap-sub000/equivalence"
	"github.com/OSCC-Project/iMap-sub000/klut"
	"github.com/OSCC-Project/iMap-sub000/refactor"
	"github.com/OSCC-Project/iMap-sub000/rewrite"
)

// Manager holds one mutable working AIG plus a bounded history of past
// snapshots, and dispatches to the individual passes (spec.md §6's CLI
// command surface).
type Manager struct {
	g    *aig.Graph
	cfg  *config.Config
	hist *history

	compress  *aig.Graph
	compress2 *aig.Graph
	merged    *aig.Graph
	view      *choice.View
}

// New returns a Manager over g, configured from cfg (config.Default() if
// cfg is nil).
func New(g *aig.Graph, cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Manager{g: g, cfg: cfg, hist: newHistory()}
}

// Current returns the manager's current working AIG.
func (m *Manager) Current() *aig.Graph { return m.g }

// Balance rebuilds every PO cone with AND-balancing (spec.md §4.7).
func (m *Manager) Balance() {
	balance.New(m.g).Run()
	m.invalidateChoices()
}

// Rewrite applies one rewriting pass and returns the number of
// substitutions made (spec.md §4.8).
func (m *Manager) Rewrite(p rewrite.Params) int {
	n := rewrite.Run(m.g, p)
	m.invalidateChoices()
	return n
}

// Refactor applies one refactoring pass and returns the number of
// substitutions made (spec.md §4.9).
func (m *Manager) Refactor(p refactor.Params) int {
	n := refactor.Run(m.g, p)
	m.invalidateChoices()
	return n
}

// Cleanup reclaims dead arena slots left by prior substitutions.
func (m *Manager) Cleanup() []aig.ID {
	return m.g.Cleanup()
}

// invalidateChoices drops a stale choice computation: further mutation
// of the current graph makes the previously merged/view pair meaningless.
func (m *Manager) invalidateChoices() {
	m.compress, m.compress2, m.merged, m.view = nil, nil, nil, nil
}

// runCompress is the source's dch_compress: a rewrite, a balance pass,
// then a second rewrite, both rewrites run with the same Params (there is
// no depth-preserving or zero-gain toggle, see options.go)
// (flow_manager.hpp "dch_compress"; the source disables its refactor call
// there too, so this recipe takes no refactor step either).
func (m *Manager) runCompress(g *aig.Graph) *aig.Graph {
	c := copyGraph(g)
	rp := rewriteParamsFrom(m.cfg)
	rewrite.Run(c, rp)
	balance.New(c).Run()
	rewrite.Run(c, rp)
	return c
}

// runCompress2 is the source's dch_compress2: rewrite, balance, rewrite,
// rewrite, balance, rewrite, balance.
func (m *Manager) runCompress2(g *aig.Graph) *aig.Graph {
	c := copyGraph(g)
	rp := rewriteParamsFrom(m.cfg)
	rewrite.Run(c, rp)
	balance.New(c).Run()
	rewrite.Run(c, rp)
	rewrite.Run(c, rp)
	balance.New(c).Run()
	rewrite.Run(c, rp)
	balance.New(c).Run()
	return c
}

// Compress returns one round of the compress recipe applied to the
// current graph, without mutating it.
func (m *Manager) Compress() *aig.Graph { return m.runCompress(m.g) }

// Compress2 returns the two-round compress2 recipe applied to the
// current graph, without mutating it.
func (m *Manager) Compress2() *aig.Graph {
	return m.runCompress2(m.runCompress(m.g))
}

// ComputeChoices builds the compress/compress2 snapshots of the current
// graph, merges all three into one shared-PI miter, and runs
// simulation+SAT choice synthesis over the merged graph, so a subsequent
// MapFPGA call maps with those choices available (spec.md §4.6,
// flow_manager.hpp's choice_synthesis: compress2 is added first so the
// merged graph keeps its POs).
func (m *Manager) ComputeChoices() error {
	compress := m.runCompress(m.g)
	compress2 := m.runCompress2(compress)

	merged, err := mergeForChoice([]*aig.Graph{compress2, compress, m.g})
	if err != nil {
		return err
	}

	m.compress = compress
	m.compress2 = compress2
	m.merged = merged
	m.view = dch.Synthesize(merged, dch.DefaultParams())
	return nil
}

// MapFPGA maps onto k-input LUTs: over the choice-enriched merged graph
// if ComputeChoices has run since the last mutation, over the plain
// current graph otherwise.
func (m *Manager) MapFPGA(p klut.Params) *klut.Mapping {
	if m.merged != nil && m.view != nil {
		return klut.Run(m.merged, p, m.view)
	}
	return klut.Run(m.g, p, nil)
}

// LutOpt maps the current graph and immediately collapses the mapping
// back into the current graph, the "lut_opt" command's area/delay
// optimization-by-remapping (spec.md §6 "lut_opt").
func (m *Manager) LutOpt(p klut.Params) *klut.Mapping {
	mapping := m.MapFPGA(p)
	m.g = equivalence.Collapse(m.g, mapping)
	m.invalidateChoices()
	return mapping
}

// CheckMappingEquivalence collapses mapping back into an AIG over
// source's PIs and checks it against source, gated by
// flow_manager.debug (spec.md §6): when debug is off, it reports
// Equivalent without running the prover.
func (m *Manager) CheckMappingEquivalence(source *aig.Graph, mapping *klut.Mapping) (equivalence.Result, error) {
	if !m.cfg.FlowManager.Debug {
		return equivalence.Equivalent, nil
	}
	collapsed := equivalence.Collapse(source, mapping)
	res, _, err := equivalence.Check(source, collapsed)
	return res, err
}

// CommitHistory pushes a clone of the current graph onto the history
// ring buffer under label (spec.md §6 "history -c").
func (m *Manager) CommitHistory(label string) { m.hist.commit(label, m.g) }

// HistoryList returns every committed label, oldest first
// (spec.md §6 "history -s").
func (m *Manager) HistoryList() []string { return m.hist.list() }

// RestoreHistory switches the current graph to a clone of history slot
// idx (spec.md §6 "history -r <idx>"); idx is validated before any
// mutation, so a bad index leaves the current graph untouched.
func (m *Manager) RestoreHistory(idx int) error {
	g, err := m.hist.at(idx)
	if err != nil {
		return err
	}
	m.g = g
	m.invalidateChoices()
	return nil
}
