package balance

import (
	"sort"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

// Balancer rebuilds PO cones in place on a single aig.Graph.
type Balancer struct {
	g     *aig.Graph
	memo  map[aig.ID]aig.Signal
	level map[aig.ID]int
}

// New returns a Balancer over g.
func New(g *aig.Graph) *Balancer {
	return &Balancer{g: g, memo: make(map[aig.ID]aig.Signal), level: make(map[aig.ID]int)}
}

// Run rebuilds every PO's driving cone and rewires the PO table to the
// rebuilt signals (spec.md §4.7 step 6's "returns the top of the sorted
// list", applied to every output).
func (b *Balancer) Run() {
	for i := 0; i < b.g.NumPOs(); i++ {
		s := b.g.PO(i)
		rebuilt := b.balanceNode(s.Index())
		b.g.SetPO(i, rebuilt.Xor(s.IsComplement()))
	}
}

// balanceNode returns n's rebuilt regular-polarity signal, memoized.
func (b *Balancer) balanceNode(n aig.ID) aig.Signal {
	if s, ok := b.memo[n]; ok {
		return s
	}
	if !b.g.IsAnd(n) {
		s := aig.NewSignal(n, false)
		b.memo[n] = s
		b.level[n] = 0
		return s
	}

	leaves := b.collectSupergate(n)
	rebuilt := make([]aig.Signal, len(leaves))
	for i, l := range leaves {
		rebuilt[i] = b.balanceNode(l.Index()).Xor(l.IsComplement())
	}

	out := b.huffmanRebuild(rebuilt)
	b.memo[n] = out
	b.level[out.Index()] = b.levelOf(out)
	return out
}

// collectSupergate descends through ANDs with single fanout and
// uncomplemented incoming edges, stopping at any complemented edge,
// multi-fanout node, or non-AND node (spec.md §4.7 step 2; this AIG has
// no distinguished XOR node type, so the "stop at XOR root" rule does not
// apply here — see DESIGN.md).
func (b *Balancer) collectSupergate(n aig.ID) []aig.Signal {
	var leaves []aig.Signal
	var walk func(s aig.Signal)
	walk = func(s aig.Signal) {
		if s.IsComplement() || !b.g.IsAnd(s.Index()) || b.g.FanoutSize(s.Index()) > 1 {
			leaves = append(leaves, s)
			return
		}
		c0, c1 := b.g.Children(s.Index())
		walk(c0)
		walk(c1)
	}
	c0, c1 := b.g.Children(n)
	walk(c0)
	walk(c1)
	return leaves
}

type leafItem struct {
	sig   aig.Signal
	level int
}

// huffmanRebuild pairs the two lowest-level leaves at each step, pushing
// the new AND back into the sorted list, until one signal remains
// (spec.md §4.7 step 5).
func (b *Balancer) huffmanRebuild(leaves []aig.Signal) aig.Signal {
	items := make([]leafItem, len(leaves))
	for i, s := range leaves {
		items[i] = leafItem{s, b.levelOf(s)}
	}
	// Descending level, ties broken by ascending node index, so the two
	// lowest-level (and lowest-index, among ties) leaves sit at the tail.
	sort.Slice(items, func(i, j int) bool {
		if items[i].level != items[j].level {
			return items[i].level > items[j].level
		}
		return items[i].sig.Index() < items[j].sig.Index()
	})

	for len(items) > 1 {
		last := len(items) - 1
		x, y := items[last], items[last-1]
		items = items[:last-1]

		merged := b.g.CreateAnd(x.sig, y.sig)
		lv := 1
		if x.level > y.level {
			lv = x.level + 1
		} else {
			lv = y.level + 1
		}
		b.level[merged.Index()] = lv
		newItem := leafItem{merged, lv}

		pos := sort.Search(len(items), func(i int) bool { return items[i].level <= lv })
		items = append(items, leafItem{})
		copy(items[pos+1:], items[pos:])
		items[pos] = newItem
	}
	return items[0].sig
}

func (b *Balancer) levelOf(s aig.Signal) int {
	if b.g.IsPI(s.Index()) || b.g.IsConst(s.Index()) {
		return 0
	}
	if lv, ok := b.level[s.Index()]; ok {
		return lv
	}
	return 0
}
