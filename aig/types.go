package aig

// node is one entry of the arena. For a primary input or the constant,
// child0 and child1 both equal the node's own self-signal (the "CI
// ordinal" from spec.md §3) — that equality is exactly how CreateAnd and
// the foreach iterators tell a CI from an AND gate without a separate tag.
type node struct {
	child0, child1 Signal

	fanoutSize uint32 // reference count from live AND fanins + POs
	dead       bool   // true once fanoutSize has dropped to 0 post take-out

	value   uint64 // scratch word: simulation vector / generic application value
	visited bool
	travID  uint32 // last traversal-id that touched this node

	phase bool // node's output value under the all-zero PI assignment
	markA bool // scratch mark bit (choice loop-check, MFFC walks)
	markB bool // scratch mark bit (SAT counter-example propagation)

	next ID // structural-hash collision chain; noNext terminates the chain
}

// noNext marks the end of a hash bucket's collision chain. Node index 0
// is the constant and is never itself chained (constants and PIs are never
// inserted into the structural hash), so 0 is safe to reuse as "no next".
const noNext ID = 0

func (n *node) isCI() bool { return n.child0 == n.child1 }

// Graph is the AIG arena: a single-owner node array plus the primary
// input/output lists and the structural-hash table. See doc.go.
type Graph struct {
	nodes []node

	piNodes []ID // node indices of primary inputs, in creation order
	pos     []Signal

	hashTable []ID // bucket head node-index, or noNext
	hashLoad  int  // number of AND nodes currently chained into hashTable
	nDead     int

	travCounter uint32

	hooks eventBus
}

// NewGraph returns an empty AIG: just the constant-false node at index 0.
func NewGraph() *Graph {
	g := &Graph{
		nodes:     make([]node, 1, 64),
		hashTable: make([]ID, 16),
	}
	for i := range g.hashTable {
		g.hashTable[i] = noNext
	}
	g.nodes[0] = node{child0: 0, child1: 0}
	return g
}

// Size returns the number of node slots in the arena, live or dead.
func (g *Graph) Size() int { return len(g.nodes) }

// NumPIs returns the number of primary inputs created so far.
func (g *Graph) NumPIs() int { return len(g.piNodes) }

// NumPOs returns the number of primary outputs created so far.
func (g *Graph) NumPOs() int { return len(g.pos) }

// NumDead returns the number of nodes marked dead (not yet compacted away).
func (g *Graph) NumDead() int { return g.nDead }

// PI returns the node index of the i-th primary input.
func (g *Graph) PI(i int) ID { return g.piNodes[i] }

// PO returns the signal of the i-th primary output.
func (g *Graph) PO(i int) Signal { return g.pos[i] }

// SetPO overwrites the i-th primary output's signal (used by substitution
// when an output's driver is rewired).
func (g *Graph) SetPO(i int, s Signal) { g.pos[i] = s }

// IsPI reports whether idx is a primary input (not the constant, not a gate).
func (g *Graph) IsPI(idx ID) bool {
	return idx != 0 && g.nodes[idx].isCI()
}

// IsConst reports whether idx is the constant node (index 0).
func (g *Graph) IsConst(idx ID) bool { return idx == 0 }

// IsAnd reports whether idx is a two-input AND gate.
func (g *Graph) IsAnd(idx ID) bool {
	return idx != 0 && !g.nodes[idx].isCI()
}

// IsDead reports whether idx has been taken out.
func (g *Graph) IsDead(idx ID) bool { return g.nodes[idx].dead }

// FanoutSize returns the current reference count of idx.
func (g *Graph) FanoutSize(idx ID) uint32 { return g.nodes[idx].fanoutSize }

// Phase returns node idx's value under the all-zero PI assignment.
func (g *Graph) Phase(idx ID) bool { return g.nodes[idx].phase }

// SignalPhase returns s's value under the all-zero assignment, i.e. the
// node's phase XORed with the signal's own complement bit.
func (g *Graph) SignalPhase(s Signal) bool {
	return g.nodes[s.Index()].phase != s.IsComplement()
}

// Children returns the two (possibly inverted) fanin signals of an AND
// gate, or the CI's self-signal pair for a PI/constant.
func (g *Graph) Children(idx ID) (Signal, Signal) {
	n := &g.nodes[idx]
	return n.child0, n.child1
}

// Value/SetValue expose the generic scratch word every component
// (simulation vectors in dch, ref-counts in klut) reuses for the duration
// of a single analysis; callers must clear it before reinterpreting it for
// an unrelated pass (spec.md §5 "Resource ownership").
func (g *Graph) Value(idx ID) uint64     { return g.nodes[idx].value }
func (g *Graph) SetValue(idx ID, v uint64) { g.nodes[idx].value = v }

// MarkA/MarkB are scratch flag bits with the same ownership discipline as
// Value: callers claim them for a pass and must leave them cleared after.
func (g *Graph) MarkA(idx ID) bool         { return g.nodes[idx].markA }
func (g *Graph) SetMarkA(idx ID, v bool)   { g.nodes[idx].markA = v }
func (g *Graph) MarkB(idx ID) bool         { return g.nodes[idx].markB }
func (g *Graph) SetMarkB(idx ID, v bool)   { g.nodes[idx].markB = v }

// NewTravID allocates a fresh traversal-id. Pairing this with each node's
// travID field lets traversals test "have I visited this node in *this*
// walk" in O(1) without clearing a visited set between walks (spec.md §9's
// "mark bits plus a traversal-id counter instead of timestamped sets").
func (g *Graph) NewTravID() uint32 {
	g.travCounter++
	return g.travCounter
}

func (g *Graph) TravID(idx ID) uint32          { return g.nodes[idx].travID }
func (g *Graph) SetTravID(idx ID, t uint32)    { g.nodes[idx].travID = t }
func (g *Graph) Visited(idx ID, t uint32) bool { return g.nodes[idx].travID == t }
