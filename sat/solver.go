package sat

// solver is a small DPLL search: unit propagation to a fixed point, then
// branch-and-backtrack on the first unassigned variable. It is not a CDCL
// engine — no clause learning, no restarts — sufficient for the small
// cones dch's choice sweep proves (spec.md §4.6, §9's prover is treated
// as a replaceable black box).
type solver struct {
	cnf          *CNF
	assign       []int8 // 0 unassigned, 1 true, 2 false, indexed by var
	conflicts    int
	maxConflicts int
}

func newSolver(cnf *CNF, maxConflicts int) *solver {
	return &solver{cnf: cnf, assign: make([]int8, cnf.NVars+1), maxConflicts: maxConflicts}
}

// solve returns (satisfiable, timedOut). When satisfiable, s.assign holds
// a witness. When timedOut, the result is indeterminate.
func (s *solver) solve() (bool, bool) {
	return s.search()
}

func (s *solver) litValue(l Lit) int8 { // 0 unknown, 1 true, 2 false
	v := s.assign[l.Var()]
	if v == 0 {
		return 0
	}
	isTrue := v == 1
	if l < 0 {
		isTrue = !isTrue
	}
	if isTrue {
		return 1
	}
	return 2
}

// propagate runs unit propagation to a fixed point. Returns false on a
// derived conflict; forced is the set of variables it assigned, so the
// caller can undo them on backtrack.
func (s *solver) propagate() (ok bool, forced []int32) {
	for {
		changed := false
		for _, clause := range s.cnf.Clauses {
			satisfied := false
			var unassignedLit Lit
			unassignedCount := 0
			for _, l := range clause {
				switch s.litValue(l) {
				case 1:
					satisfied = true
				case 0:
					unassignedCount++
					unassignedLit = l
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				s.conflicts++
				return false, forced
			}
			if unassignedCount == 1 {
				v := unassignedLit.Var()
				if unassignedLit < 0 {
					s.assign[v] = 2
				} else {
					s.assign[v] = 1
				}
				forced = append(forced, v)
				changed = true
			}
		}
		if !changed {
			return true, forced
		}
		if s.maxConflicts > 0 && s.conflicts > s.maxConflicts {
			return true, forced
		}
	}
}

func (s *solver) undo(vars []int32) {
	for _, v := range vars {
		s.assign[v] = 0
	}
}

func (s *solver) firstUnassigned() int32 {
	for v := int32(1); v <= s.cnf.NVars; v++ {
		if s.assign[v] == 0 {
			return v
		}
	}
	return 0
}

func (s *solver) search() (bool, bool) {
	if s.maxConflicts > 0 && s.conflicts > s.maxConflicts {
		return false, true
	}

	ok, forced := s.propagate()
	if !ok {
		s.undo(forced)
		return false, false
	}

	v := s.firstUnassigned()
	if v == 0 {
		return true, false
	}

	s.assign[v] = 1
	if sat, timedOut := s.search(); sat || timedOut {
		return sat, timedOut
	}
	s.assign[v] = 0
	s.undo(forced)

	ok, forced2 := s.propagate()
	if !ok {
		s.undo(forced2)
		return false, false
	}
	s.assign[v] = 2
	if sat, timedOut := s.search(); sat || timedOut {
		return sat, timedOut
	}
	s.assign[v] = 0
	s.undo(forced2)

	return false, false
}
