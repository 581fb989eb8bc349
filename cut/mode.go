package cut

import "math"

// Mode selects the cost comparator used by Set.Insert and by the
// mapper's best-cut selection. Exactly one Mode is active at a time,
// explicit process-wide state set by klut at the start of each pass
// (spec.md §4.3, §5, §9 — "model as a dispatch table, do not use
// thread-local storage").
type Mode int

const (
	ModeDefault Mode = iota // delay -> size
	ModeDelay               // delay -> size -> area -> edge -> power -> useless
	ModeDelay2              // delay -> useless -> area -> edge -> power -> size
	ModeArea                // area -> edge -> power -> delay -> size -> useless
	ModeFlow                // area-flow -> delay (epsilon-tolerant)
)

// currentMode is the process-wide comparator mode.
var currentMode Mode = ModeDefault

// SetMode installs the comparator mode for every subsequent Set.Insert
// call, until the next SetMode. Called once per klut pass.
func SetMode(m Mode) { currentMode = m }

// CurrentMode returns the comparator mode most recently installed by
// SetMode.
func CurrentMode() Mode { return currentMode }

// epsilon is the float tolerance used for all cost comparisons (spec.md
// §4.3: "All float comparisons use an ε tolerance (0.005)").
const epsilon = 0.005

func feq(a, b float64) bool { return math.Abs(a-b) < epsilon }
func flt(a, b float64) bool { return a < b-epsilon }

// Less orders a before b under m. It is a total preorder: ties at every
// tier fall through to the next, and the final tiebreak (leaf-wise
// lexicographic comparison, a shorter prefix first) makes it a strict weak ordering
// suitable for a stable insertion-sort cut-set.
func Less(m Mode, a, b *Cut) bool {
	switch m {
	case ModeDelay:
		return lessChain(a, b,
			cmpFloat(a.Delay, b.Delay),
			cmpInt(len(a.Leaves), len(b.Leaves)),
			cmpFloat(a.Area, b.Area),
			cmpFloat(a.Edge, b.Edge),
			cmpFloat(a.Power, b.Power),
			cmpBool(a.Useless, b.Useless),
		)
	case ModeDelay2:
		return lessChain(a, b,
			cmpFloat(a.Delay, b.Delay),
			cmpBool(a.Useless, b.Useless),
			cmpFloat(a.Area, b.Area),
			cmpFloat(a.Edge, b.Edge),
			cmpFloat(a.Power, b.Power),
			cmpInt(len(a.Leaves), len(b.Leaves)),
		)
	case ModeArea:
		return lessChain(a, b,
			cmpFloat(a.Area, b.Area),
			cmpFloat(a.Edge, b.Edge),
			cmpFloat(a.Power, b.Power),
			cmpFloat(a.Delay, b.Delay),
			cmpInt(len(a.Leaves), len(b.Leaves)),
			cmpBool(a.Useless, b.Useless),
		)
	case ModeFlow:
		return lessChain(a, b,
			cmpFloat(a.AreaFlow, b.AreaFlow),
			cmpFloat(a.Delay, b.Delay),
		)
	default: // ModeDefault
		return lessChain(a, b,
			cmpFloat(a.Delay, b.Delay),
			cmpInt(len(a.Leaves), len(b.Leaves)),
		)
	}
}

// tri is -1/0/+1, mirroring cmp.Compare, used to thread a chain of tiered
// comparisons until one of them is decisive.
type tri int

func cmpFloat(a, b float64) tri {
	switch {
	case flt(a, b):
		return -1
	case flt(b, a):
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) tri {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) tri {
	// false < true: a "useless" cut (true) sorts after a useful one.
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func lessChain(a, b *Cut, tiers ...tri) bool {
	for _, t := range tiers {
		if t != 0 {
			return t < 0
		}
	}
	return lexicographicLess(a.Leaves, b.Leaves)
}

func lexicographicLess(a, b []ID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
