// Package equivalence checks whether two AIGs (same PI count, same PI
// order) compute the same vector of Boolean functions: it copies both
// graphs' combinational logic into one shared miter graph and hands the
// miter output to the sat package's DPLL oracle (spec.md §8's round-trip
// laws and the flow manager's debug-mode equivalence gate, spec.md §6
// "flow_manager.debug").
package equivalence
