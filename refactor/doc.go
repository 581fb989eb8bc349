// Package refactor replaces a node's driving cone with a freshly
// factored AND/OR tree built from the cone's minimized sum-of-products
// form, when that reduces node count without increasing level (spec.md
// §4.9).
//
// The pipeline: reconvergence-driven cut construction (reconverge.go),
// bit-parallel simulation of the resulting cone into a truth table
// (simulate.go), minimal-literal cube cover extraction via the
// classical recursive unate-paradigm ISOP algorithm (isop.go), and
// literal-based quick factoring of that cover into a balanced AND/OR
// tree (factor.go) — see DESIGN.md for how this factoring compares to
// full kernel/co-kernel extraction.
package refactor
