// Package sat provides the combinational-equivalence oracle consumed by
// dch's choice synthesis (spec.md §4.6): Prove(g, a, b) decides whether
// two signals of the same aig.Graph are semantically equivalent by
// Tseitin-encoding their transitive fanin cone into CNF (with a
// specialized encoding for recognized MUX gates) and running a DPLL
// search for a satisfying assignment of the miter a XOR b.
//
// This is the spec's "black box" sat_prove — a small, self-contained
// DPLL solver, not a production CDCL engine. It exists so dch has a real
// prover to call; it is not meant to scale to large cones.
package sat
