package equivalence

import (
	"fmt"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/sat"
)

// Result mirrors sat.Result: two AIGs are Equivalent, NonEquivalent (with
// a witness), or the proof attempt ran out of budget (Timeout).
type Result = sat.Result

const (
	Equivalent    = sat.Equivalent
	NonEquivalent = sat.NonEquivalent
	Timeout       = sat.Timeout
)

func errMismatch(what string, a, b int) error {
	return fmt.Errorf("equivalence: %s mismatch: %d vs %d", what, a, b)
}

// Check decides whether a and b, taken as vectors of Boolean functions
// over PI position (not PI identity: the graphs need not share any
// nodes), compute the same outputs for every input assignment.
func Check(a, b *aig.Graph) (Result, sat.CounterExample, error) {
	return CheckWithBudget(a, b, sat.DefaultMaxConflicts)
}

// CheckWithBudget is Check with an explicit SAT conflict budget.
func CheckWithBudget(a, b *aig.Graph, maxConflicts int) (Result, sat.CounterExample, error) {
	m, err := buildMiter(a, b)
	if err != nil {
		return Timeout, nil, err
	}
	res, cex := sat.ProveWithBudget(m, m.PO(0), aig.ConstFalse, maxConflicts)
	return res, cex, nil
}
