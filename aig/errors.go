package aig

import (
	"errors"
	"fmt"
)

// Sentinel errors for callers that validate external node indices. No
// function in this package returns them: CreateAnd/CreatePI/CreatePO,
// SubstituteNode and the foreach accessors have no error results.
var (
	// ErrDeadNode indicates an operation referenced a node that has already
	// been taken out (marked dead, not yet compacted away by Cleanup).
	ErrDeadNode = errors.New("aig: dead node")

	// ErrIndexOutOfRange indicates a node index beyond the current arena.
	ErrIndexOutOfRange = errors.New("aig: node index out of range")

	// ErrNotAndGate indicates an operation expected a two-input AND node but
	// found a primary input or the constant.
	ErrNotAndGate = errors.New("aig: node is not an AND gate")
)

// assertf panics with a formatted message if cond is false. Used only to
// guard the invariants of §3/§8 (ordered fanins, strashing uniqueness,
// live-node access) — never for recoverable, caller-triggerable conditions.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
