package cut

// Set is a bounded, ascending-cost-ordered collection of up to Capacity
// cuts for one node (spec.md §4.3).
type Set struct {
	cuts     []*Cut
	Capacity int
}

// NewSet returns an empty cut-set with the given capacity (L, spec.md §6:
// L∈[6,20], internally capped at MaxL).
func NewSet(capacity int) *Set {
	if capacity > MaxL {
		capacity = MaxL
	}
	return &Set{Capacity: capacity}
}

// Len returns the number of cuts currently held.
func (s *Set) Len() int { return len(s.cuts) }

// At returns the i-th cut in cost order (0 is best).
func (s *Set) At(i int) *Cut { return s.cuts[i] }

// Best returns the cut at position 0, or nil if the set is empty.
func (s *Set) Best() *Cut {
	if len(s.cuts) == 0 {
		return nil
	}
	return s.cuts[0]
}

// Clear empties the set without releasing its backing array.
func (s *Set) Clear() { s.cuts = s.cuts[:0] }

// All returns the live cuts in cost order. Callers must not retain the
// slice past the next Insert/Clear/Limit.
func (s *Set) All() []*Cut { return s.cuts }

// Insert applies dominance pruning and a cost-ordered insertion under the
// process-wide comparator mode (spec.md §4.3):
//  1. Any existing cut dominated by c is dropped.
//  2. If an existing (surviving) cut dominates c, c is rejected outright
//     (this keeps the §8 invariant that no two cuts in a set are mutually
//     comparable by dominance).
//  3. c is inserted at its comparator lower-bound position; if the set is
//     already at capacity, c is discarded if it would land at or past the
//     end, otherwise the current last cut is dropped to make room.
func (s *Set) Insert(c *Cut) bool {
	kept := s.cuts[:0]
	for _, existing := range s.cuts {
		if existing.Dominates(c) {
			// c is redundant; still compact `kept` back down in case this
			// loop already dropped earlier entries, then bail out.
			kept = append(kept, existing)
			continue
		}
		if !c.Dominates(existing) {
			kept = append(kept, existing)
		}
		// else: existing is dominated by c, drop it.
	}
	s.cuts = kept

	// If c was rejected by an existing dominator above, `kept` will still
	// contain that dominator and c must not be inserted.
	for _, existing := range s.cuts {
		if existing.Dominates(c) {
			return false
		}
	}

	pos := s.lowerBound(c)
	if len(s.cuts) >= s.Capacity {
		if pos >= s.Capacity {
			return false
		}
		s.cuts = s.cuts[:len(s.cuts)-1]
	}

	s.cuts = append(s.cuts, nil)
	copy(s.cuts[pos+1:], s.cuts[pos:len(s.cuts)-1])
	s.cuts[pos] = c
	return true
}

// lowerBound finds the first index whose cut is not strictly better than
// c under the current mode (i.e. the position c should be inserted at to
// keep the set sorted).
func (s *Set) lowerBound(c *Cut) int {
	mode := CurrentMode()
	lo, hi := 0, len(s.cuts)
	for lo < hi {
		mid := (lo + hi) / 2
		if Less(mode, s.cuts[mid], c) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Limit truncates the set to its first l entries (best l cuts).
func (s *Set) Limit(l int) {
	if l < len(s.cuts) {
		s.cuts = s.cuts[:l]
	}
}

// UpdateBest rotates the cut at position i to the front, used after the
// mapper settles on a new winning cut that wasn't already best.
func (s *Set) UpdateBest(i int) {
	if i <= 0 || i >= len(s.cuts) {
		return
	}
	winner := s.cuts[i]
	copy(s.cuts[1:i+1], s.cuts[0:i])
	s.cuts[0] = winner
}
