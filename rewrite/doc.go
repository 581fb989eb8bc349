// Package rewrite replaces 4-leaf cones of an AIG with a precompiled
// subgraph whenever its MFFC-based estimate says doing so reduces node
// count (spec.md §4.8). The replacement's depth is not checked: a
// rewrite can increase the cone's depth.
//
// The database (db.go) stores each candidate subgraph in a private
// 4-input template AIG, keyed by its NPN-canonical truth table; npn.go
// brute-forces the canonical form of any 4-variable function (16 input
// negations x 24 permutations x 2 output negations — small enough to
// search exhaustively every time, no precomputed canonicalization table
// needed). The database covers a handful of representative functions
// (AND4, OR4, AND-OR-invert, 2-input XOR, 2:1 MUX) rather than the
// source's full 222-class table — see DESIGN.md.
package rewrite
