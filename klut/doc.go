// Package klut maps an AIG (optionally with choices) onto k-input LUTs
// via a multi-pass priority-cut schedule: a delay-oriented pass finds
// the achievable critical path, then area-flow and exact-area passes
// trade area against that fixed delay budget, all driven by the cut
// package's five comparator modes (spec.md §4.10).
//
// Cut leaf-sets and truth tables are enumerated once via cutenum (they
// are structural and don't change across passes); each pass recomputes
// every cut's cost fields against the previous pass's arrival/estimated
// reference data and re-sorts the same cut-sets under the pass's mode,
// rather than re-merging fanin cut-sets from scratch every time — see
// DESIGN.md.
package klut
