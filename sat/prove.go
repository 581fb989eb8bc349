package sat

import "github.com/OSCC-Project/iMap-sub000/aig"

// Result is sat_prove's three-way outcome (spec.md §4.6).
type Result int

const (
	Equivalent Result = iota
	NonEquivalent
	Timeout
)

func (r Result) String() string {
	switch r {
	case Equivalent:
		return "equivalent"
	case NonEquivalent:
		return "non-equivalent"
	default:
		return "timeout"
	}
}

// CounterExample maps each PI's node index to its value in a
// non-equivalence witness.
type CounterExample map[aig.ID]bool

// DefaultMaxConflicts bounds search effort before a proof attempt is
// abandoned as a Timeout (spec.md §4.6 "recycling policy" uses the same
// kind of budget to decide when to rebuild the solver).
const DefaultMaxConflicts = 50000

// Prove decides whether signals a and b of g compute the same function,
// by encoding their shared transitive fanin cone into CNF and searching
// for an assignment where a and b differ.
func Prove(g *aig.Graph, a, b aig.Signal) (Result, CounterExample) {
	return ProveWithBudget(g, a, b, DefaultMaxConflicts)
}

// ProveWithBudget is Prove with an explicit conflict budget (0 = unbounded).
func ProveWithBudget(g *aig.Graph, a, b aig.Signal, maxConflicts int) (Result, CounterExample) {
	enc := newEncoder(g)
	la := enc.signalLit(a)
	lb := enc.signalLit(b)

	// Miter: force a XOR b, i.e. exactly one of la, lb true.
	enc.cnf.addClause(la, lb)
	enc.cnf.addClause(-la, -lb)

	s := newSolver(enc.cnf, maxConflicts)
	sat, timedOut := s.solve()
	if timedOut {
		return Timeout, nil
	}
	if !sat {
		return Equivalent, nil
	}

	cex := CounterExample{}
	g.ForEachPI(func(n aig.ID) {
		v := enc.vars[n]
		if v == 0 {
			return // PI not in the cone; its value is a don't-care
		}
		cex[n] = s.assign[v] == 1
	})
	return NonEquivalent, cex
}
