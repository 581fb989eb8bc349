// Package dch builds an AIG-with-choices view (choice.View) over an
// existing aig.Graph by proposing candidate equivalence classes through
// random simulation and confirming each candidate merge with the sat
// package's prover (spec.md §4.6, after Mishchenko et al.'s DCH
// algorithm).
//
// Simplification from the source algorithm (recorded in DESIGN.md):
// candidates are proved directly against the input graph's own node
// indices rather than mirrored into a separate scratch network first —
// the scratch mirror exists in the source purely as a proof-speed
// optimization (cheap re-simplification before each SAT call), and
// dropping it changes performance, not the set of choices the prover can
// validate.
package dch
