// Package aig implements a strashed two-input And-Inverter Graph: the node
// storage, the (index, inverted) Signal type, structural hashing with
// on-miss dedup, reference-counted fanout, dead-node reclamation, and
// cascading substitution.
//
// What:
//
//   - Signal: a 64-bit (index, complement) pair identifying a node's output
//     under a given polarity.
//   - Graph: the node arena. Node 0 is constant-false; 1..NumPIs() are
//     primary inputs; the rest are two-input AND gates.
//   - CreateAnd applies the trivial simplifications (a∧a=a, a∧¬a=0,
//     a∧0=0, a∧1=a) and structural hashing before allocating a new node.
//   - SubstituteNode rewires every live fanout of one signal onto another,
//     cascading through further structural-hash hits via an explicit work
//     stack (never recursion — see spec.md §5's ordering requirement).
//
// Why:
//
//   - Strashing keeps semantically identical sub-circuits a single node,
//     which is what makes balance/rewrite/refactor gain tests meaningful:
//     a replacement only "pays" for nodes that are not already shared.
//
// Concurrency: single-threaded and cooperative, per spec.md §5. A Graph is
// owned by exactly one goroutine at a time; views (cut sets, mapping
// overlays) hold references into it but never mutate the node array except
// through the event hooks in events.go.
//
// Errors: CreateAnd/CreatePI/CreatePO never fail. Dead-node access (using
// a node that has been taken out and not yet compacted away by Cleanup) is
// a programming error; the accessors do not check for it. The assert
// helpers in this package panic on a double take-out or a dereference of a
// node whose fanout count is already zero.
package aig
