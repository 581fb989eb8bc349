// Package cut implements the bounded priority cut and cut-set used by cut
// enumeration (cutenum), the rewriter/refactorer's local cut lookups, and
// the k-LUT mapper.
//
// A Cut is a sorted (ascending node index), size-bounded leaf set with a
// 64-bit containment signature, an optional truth-table literal, and a
// small cost payload (delay/area/area-flow/edge/power). A Set holds up
// to L cuts for one node, kept in ascending cost order under a
// mode-dependent comparator (DELAY/DELAY2/AREA/FLOW/DEFAULT, spec.md
// §4.3) and pruned by dominance: if c1.Leaves ⊆ c2.Leaves, c2 is
// redundant and is dropped.
//
// The comparator mode is process-wide, explicit state (Mode, SetMode) —
// not goroutine-local — because the whole engine is single-threaded and
// cooperative (spec.md §5); klut sets it once at the start of each mapping
// pass and cutenum/rewrite/refactor read the same value.
package cut
