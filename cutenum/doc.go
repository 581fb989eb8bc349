// Package cutenum computes, for every node of an AIG, a bounded priority
// cut-set (cut.Set) built from its fanins' cut-sets in topological order
// (spec.md §4.4). It optionally interns each cut's truth table into a
// shared ttable.Table, extending each child's table to the merged support
// before applying the two-input AND gate function.
package cutenum
