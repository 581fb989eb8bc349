package klut

import (
	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/choice"
)

// dupChoices rebuilds g the same way choice.DupDFS does — recursing into
// a node's next equivalence-list member before its own children, so a
// class's tail always gets a smaller new index than its representative —
// but additionally returns the old-to-new index translation, which
// DupDFS does not expose (see DESIGN.md). It is built entirely on
// View's exported surface (Repr, ForEachClassMember) rather than
// reaching into choice's unexported chain-termination sentinel.
func dupChoices(g *aig.Graph, v *choice.View) (*aig.Graph, []aig.Signal, []aig.Signal) {
	nextAfter := make(map[aig.ID]aig.ID)
	for id := aig.ID(0); id < aig.ID(g.Size()); id++ {
		if v.Repr(id) != id {
			continue
		}
		var prev aig.ID
		havePrev := false
		v.ForEachClassMember(id, func(m aig.ID) {
			if havePrev {
				nextAfter[prev] = m
			}
			prev = m
			havePrev = true
		})
	}

	out := aig.NewGraph()
	mapped := make([]aig.Signal, g.Size())
	done := make([]bool, g.Size())
	mapped[0] = aig.ConstFalse
	done[0] = true
	g.ForEachPI(func(n aig.ID) {
		mapped[n] = out.CreatePI()
		done[n] = true
	})

	var visit func(n aig.ID) aig.Signal
	visit = func(n aig.ID) aig.Signal {
		if done[n] {
			return mapped[n]
		}
		if next, ok := nextAfter[n]; ok {
			visit(next)
		}
		c0, c1 := g.Children(n)
		s0 := visit(c0.Index()).Xor(c0.IsComplement())
		s1 := visit(c1.Index()).Xor(c1.IsComplement())
		s := out.CreateAnd(s0, s1)
		mapped[n] = s
		done[n] = true
		return s
	}

	pos := make([]aig.Signal, 0, g.NumPOs())
	g.ForEachPO(func(i int, s aig.Signal) {
		pos = append(pos, visit(s.Index()).Xor(s.IsComplement()))
	})
	for _, s := range pos {
		out.CreatePO(s)
	}
	return out, pos, mapped
}

// buildClassOf translates the old graph's repr/equiv relationships into
// the post-dupChoices graph's index space: for every representative's new
// id, the new ids of its other class members (the candidates a splice
// step folds into the representative's cut-set, spec.md §4.10 step 4).
func buildClassOf(oldG *aig.Graph, v *choice.View, mapped []aig.Signal) map[aig.ID][]aig.ID {
	classOf := make(map[aig.ID][]aig.ID)
	for id := aig.ID(0); id < aig.ID(oldG.Size()); id++ {
		if v.Repr(id) != id || !v.IsRepr(id) {
			continue
		}
		reprNew := mapped[id].Index()
		var members []aig.ID
		v.ForEachClassMember(id, func(m aig.ID) {
			if m == id {
				return
			}
			members = append(members, mapped[m].Index())
		})
		if len(members) > 0 {
			classOf[reprNew] = members
		}
	}
	return classOf
}
