// Package aiger reads and writes the AIGER format (both the ASCII "aag"
// and binary "aig" variants), the only front-end the core's invariants
// are exposed through (spec.md §6). Literal 2i means "node i asserted",
// 2i+1 "negated"; variables 1..M are PIs then gates in order; each gate's
// two fanin literals satisfy lhs > lit0 >= lit1, and the binary form
// delta-encodes (lhs-lit0, lit0-lit1) as 7-bit varints, grounded on
// gaissmai/bart's serialize.go byte-stream/error-return idiom.
package aiger
