// Package choice overlays functionally-equivalent node classes onto an
// aig.Graph (spec.md §3 "Choice class", §4.5).
//
// Each node n carries a representative repr[n] (repr[n] <= n) and a
// singly-linked equiv[n] pointing to the next class member or to the
// "no more" sentinel. The class {n, equiv[n], equiv[equiv[n]], ...} shares
// one Boolean function up to polarity; the representative is always the
// class's lowest index and is the only member the k-LUT mapper treats as
// "live" for required-time propagation.
package choice
