package flowmgr

import "errors"

var (
	errNoSnapshots = errors.New("flowmgr: no snapshots to merge")
	errPIMismatch  = errors.New("flowmgr: snapshot PI count mismatch")
	errPOMismatch  = errors.New("flowmgr: snapshot PO count mismatch")
	errNoHistory   = errors.New("flowmgr: history slot is empty")
	errBadHistory  = errors.New("flowmgr: history index out of range")
)
