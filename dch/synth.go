package dch

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/choice"
	"github.com/OSCC-Project/iMap-sub000/sat"
)

// Params controls simulation width and the SAT prover's conflict budget.
type Params struct {
	Words        int
	Seed         int64
	MaxConflicts int
}

// DefaultParams matches spec.md §9's "seed from a fixed PRNG" determinism
// requirement with a modest simulation width.
func DefaultParams() Params {
	return Params{Words: 4, Seed: 1, MaxConflicts: sat.DefaultMaxConflicts}
}

// Synthesize proposes equivalence classes for every node of g by random
// simulation and confirms each candidate merge with the SAT prover,
// returning a choice.View recording every proof that succeeded. A
// non-equivalence result breaks that node out of its (false) class; a
// timeout drops the candidate silently (spec.md §4.6, §7).
func Synthesize(g *aig.Graph, p Params) *choice.View {
	sv := simulate(g, p.Words, p.Seed)
	simRepr := classify(g, sv)
	v := choice.NewView(g)

	g.ForEachGate(func(n aig.ID) {
		r := simRepr[n]
		if r == n {
			return
		}

		candidate := aig.NewSignal(r, g.Phase(n) != g.Phase(r))
		result, cex := sat.ProveWithBudget(g, aig.NewSignal(n, false), candidate, p.MaxConflicts)

		switch result {
		case sat.Equivalent:
			v.SetChoice(n, r)
		case sat.NonEquivalent:
			simRepr = refine(g, sv, cex)
			simRepr[n] = n
		case sat.Timeout:
			// candidate dropped; n keeps no choice this round.
		}
	})

	return v
}
