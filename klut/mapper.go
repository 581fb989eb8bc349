package klut

import (
	"math"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/choice"
	"github.com/OSCC-Project/iMap-sub000/cut"
	"github.com/OSCC-Project/iMap-sub000/cutenum"
	"github.com/OSCC-Project/iMap-sub000/ttable"
)

// Params bounds a mapping run (spec.md §6: K∈[2,8], L∈[6,20]).
type Params struct {
	K          int
	L          int
	FlowIters  int // klut_mapping.uGlobal_round
	AreaIters  int // klut_mapping.uLocal_round
	Preprocess bool
}

// DefaultParams matches the source's default map_fpga invocation.
func DefaultParams() Params {
	return Params{K: 6, L: 8, FlowIters: 2, AreaIters: 1, Preprocess: true}
}

// Cell is one mapped LUT: its root node, its fanin leaves in cut order,
// and (optionally) the truth table to program it with.
type Cell struct {
	Root     aig.ID
	Leaves   []aig.ID
	HasTruth bool
	Truth    ttable.Literal
}

// Mapping is the k-LUT network derived from a mapper run: one Cell per
// referenced non-CI node plus the PO signals driving the original graph's
// outputs (translated into the mapped graph's index space).
type Mapping struct {
	Cells  []Cell
	POs    []aig.Signal
	Delay  float64
	Truths *ttable.Table // resolves each Cell's Truth literal
}

// passKind names one scheduled pass (spec.md §4.10 "Multi-pass schedule").
type passKind int

const (
	passDelay passKind = iota
	passDelay2
	passArea
	passFlow
)

func modeFor(pk passKind) cut.Mode {
	switch pk {
	case passDelay:
		return cut.ModeDelay
	case passDelay2:
		return cut.ModeDelay2
	case passArea:
		return cut.ModeArea
	case passFlow:
		return cut.ModeFlow
	default:
		return cut.ModeDefault
	}
}

type mapper struct {
	g    *aig.Graph
	p    Params
	cuts *cutenum.Map
	tt   *ttable.Table
	view *choice.View

	classOf map[aig.ID][]aig.ID

	refs     []int
	estRef   []float64
	arrival  []float64
	required []float64
	best     []*cut.Cut
}

// Run maps g onto k-input LUTs, optionally duplicating choice-class
// members first (view may be nil for a plain AIG), and returns the
// derived cell network (spec.md §4.10).
func Run(g *aig.Graph, p Params, view *choice.View) *Mapping {
	workGraph := g
	var classOf map[aig.ID][]aig.ID
	if view != nil {
		dup, _, mapped := dupChoices(g, view)
		workGraph = dup
		classOf = buildClassOf(g, view, mapped)
	}

	m := newMapper(workGraph, p, view, classOf)
	m.schedule()
	return m.derive()
}

func newMapper(g *aig.Graph, p Params, view *choice.View, classOf map[aig.ID][]aig.ID) *mapper {
	n := g.Size()
	tt := ttable.NewTable()
	cuts := cutenum.Enumerate(g, cutenum.Params{K: p.K, L: p.L, ComputeTruth: true}, tt)

	m := &mapper{
		g:        g,
		p:        p,
		cuts:     cuts,
		tt:       tt,
		view:     view,
		classOf:  classOf,
		refs:     make([]int, n),
		estRef:   make([]float64, n),
		arrival:  make([]float64, n),
		required: make([]float64, n),
		best:     make([]*cut.Cut, n),
	}
	for i := 0; i < n; i++ {
		m.required[i] = math.Inf(1)
		m.refs[i] = int(g.FanoutSize(aig.ID(i)))
	}

	m.best[0] = cuts.Get(0).Best()
	g.ForEachPI(func(id aig.ID) {
		m.best[id] = cuts.Get(id).Best()
	})
	return m
}

// schedule runs the pass sequence of spec.md §4.10: a DELAY pass always
// leads; if Preprocess is on, a fancy-tiebreak DELAY2 pass and a warm-up
// AREA pass follow before the FlowIters/AreaIters rounds.
func (m *mapper) schedule() {
	m.runPass(passDelay)
	if m.p.Preprocess {
		m.runPass(passDelay2)
		m.runPass(passArea)
	}
	for i := 0; i < m.p.FlowIters; i++ {
		m.runPass(passFlow)
	}
	for i := 0; i < m.p.AreaIters; i++ {
		m.runPass(passArea)
	}
}

func (m *mapper) runPass(pk passKind) {
	cut.SetMode(modeFor(pk))
	m.g.ForEachGate(func(n aig.ID) {
		m.processNode(n, pk)
	})
	m.recomputeRequired()
}
