package sat

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/choice"
)

// Lit is a DIMACS-style literal: positive values assert a variable,
// negative values assert its negation. Variable 0 is never used.
type Lit int32

// Var returns the (always positive) variable index a literal refers to.
func (l Lit) Var() int32 {
	if l < 0 {
		return int32(-l)
	}
	return int32(l)
}

func (l Lit) Negate() Lit { return -l }

// CNF is a growable clause database plus the variable watermark.
type CNF struct {
	Clauses [][]Lit
	NVars   int32
}

func newCNF() *CNF { return &CNF{} }

func (c *CNF) newVar() int32 {
	c.NVars++
	return c.NVars
}

func (c *CNF) addClause(lits ...Lit) {
	clause := make([]Lit, len(lits))
	copy(clause, lits)
	c.Clauses = append(c.Clauses, clause)
}

// encoder Tseitin-encodes the transitive fanin cone of a set of root
// signals into a fresh CNF instance, one SAT variable per AIG node.
type encoder struct {
	g      *aig.Graph
	cnf    *CNF
	vars   []int32 // node index -> SAT var, 0 if unencoded
	marked []bool
}

func newEncoder(g *aig.Graph) *encoder {
	return &encoder{g: g, cnf: newCNF(), vars: make([]int32, g.Size()), marked: make([]bool, g.Size())}
}

// varFor returns n's SAT variable, allocating (and, for AND gates,
// recursively encoding the gate's clauses) on first use.
func (e *encoder) varFor(n aig.ID) int32 {
	if e.vars[n] != 0 {
		return e.vars[n]
	}
	v := e.cnf.newVar()
	e.vars[n] = v

	switch {
	case e.g.IsConst(n):
		e.cnf.addClause(e.lit(false, v)) // constant-false node is forced false
	case e.g.IsPI(n):
		// free variable, no clauses
	default:
		e.encodeGate(n, v)
	}
	return v
}

func (e *encoder) lit(neg bool, v int32) Lit {
	if neg {
		return Lit(-v)
	}
	return Lit(v)
}

// signalLit returns the literal for an arbitrary (possibly complemented)
// signal, allocating/encoding its node first.
func (e *encoder) signalLit(s aig.Signal) Lit {
	v := e.varFor(s.Index())
	return e.lit(s.IsComplement(), v)
}

func (e *encoder) encodeGate(n aig.ID, x int32) {
	if ctrl, then, els, ok := choice.RecognizeMux(e.g, n); ok {
		e.encodeMux(x, ctrl, then, els)
		return
	}

	c0, c1 := e.g.Children(n)
	a := e.signalLit(c0)
	b := e.signalLit(c1)

	// x <-> (a & b), standard Tseitin translation for a 2-input AND.
	e.cnf.addClause(-Lit(x), a)
	e.cnf.addClause(-Lit(x), b)
	e.cnf.addClause(Lit(x), -a, -b)
}

// encodeMux emits the specialized ITE(ctrl,then,els) encoding: four main
// clauses plus two redundant implication clauses that strengthen unit
// propagation when ctrl is unassigned (spec.md §4.6 "MUX-aware CNF").
func (e *encoder) encodeMux(x int32, ctrl, then, els aig.Signal) {
	c := e.signalLit(ctrl)
	t := e.signalLit(then)
	s := e.signalLit(els)
	xl := Lit(x)

	e.cnf.addClause(-c, -t, xl)
	e.cnf.addClause(-c, t, -xl)
	e.cnf.addClause(c, -s, xl)
	e.cnf.addClause(c, s, -xl)
	e.cnf.addClause(-t, -s, xl)
	e.cnf.addClause(t, s, -xl)
}
