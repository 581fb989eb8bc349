package rewrite

import "github.com/OSCC-Project/iMap-sub000/aig"

// Template is the private 4-PI AIG the subgraph database is built in
// (spec.md §9 "Database format").
var Template = aig.NewGraph()

var templatePIs [4]aig.Signal

type dbEntry struct {
	tt    uint16
	sig   aig.Signal
	phase uint8
	perm  [4]int
}

var database map[uint16][]dbEntry

var projMask = [4]uint16{0xAAAA, 0xCCCC, 0xF0F0, 0xFF00}

func init() {
	for i := 0; i < 4; i++ {
		templatePIs[i] = Template.CreatePI()
	}
	p0, p1, p2, p3 := templatePIs[0], templatePIs[1], templatePIs[2], templatePIs[3]

	and4 := Template.CreateAnd(Template.CreateAnd(p0, p1), Template.CreateAnd(p2, p3))
	or4 := Template.CreateAnd(Template.CreateAnd(p0.Not(), p1.Not()), Template.CreateAnd(p2.Not(), p3.Not())).Not()
	aoi := Template.CreateAnd(Template.CreateAnd(p0, p1).Not(), Template.CreateAnd(p2, p3).Not()).Not()
	xor2 := Template.CreateAnd(Template.CreateAnd(p0, p1.Not()).Not(), Template.CreateAnd(p0.Not(), p1).Not()).Not()
	mux := Template.CreateAnd(Template.CreateAnd(p0, p1).Not(), Template.CreateAnd(p0.Not(), p2).Not()).Not()

	database = make(map[uint16][]dbEntry)
	for _, s := range []aig.Signal{and4, or4, aoi, xor2, mux} {
		tt := evalTemplate(s)
		canon, phase, perm := Canonicalize(tt)
		database[canon] = append(database[canon], dbEntry{tt: tt, sig: s, phase: phase, perm: perm})
	}
}

// evalTemplate computes s's 16-bit truth table by evaluating Template's
// nodes against the four fixed variable-projection masks.
func evalTemplate(s aig.Signal) uint16 {
	memo := make(map[aig.ID]uint16)
	var eval func(idx aig.ID) uint16
	eval = func(idx aig.ID) uint16 {
		if v, ok := memo[idx]; ok {
			return v
		}
		var v uint16
		switch {
		case Template.IsConst(idx):
			v = 0
		case Template.IsPI(idx):
			for i, pi := range templatePIs {
				if pi.Index() == idx {
					v = projMask[i]
				}
			}
		default:
			c0, c1 := Template.Children(idx)
			a := eval(c0.Index())
			if c0.IsComplement() {
				a = ^a
			}
			b := eval(c1.Index())
			if c1.IsComplement() {
				b = ^b
			}
			v = a & b
		}
		memo[idx] = v
		return v
	}
	v := eval(s.Index())
	if s.IsComplement() {
		v = ^v
	}
	return v
}

// instantiate recreates tmplSig's subgraph in host, mapping each of the
// four template PIs to leaves[i] (spec.md §4.8 step 4, "memoized in a
// per-cut map").
func instantiate(host *aig.Graph, leaves [4]aig.Signal, tmplSig aig.Signal) aig.Signal {
	memo := make(map[aig.ID]aig.Signal)
	var build func(idx aig.ID) aig.Signal
	build = func(idx aig.ID) aig.Signal {
		if s, ok := memo[idx]; ok {
			return s
		}
		var s aig.Signal
		switch {
		case Template.IsConst(idx):
			s = aig.ConstFalse
		case Template.IsPI(idx):
			for i, pi := range templatePIs {
				if pi.Index() == idx {
					s = leaves[i]
				}
			}
		default:
			c0, c1 := Template.Children(idx)
			a := build(c0.Index()).Xor(c0.IsComplement())
			b := build(c1.Index()).Xor(c1.IsComplement())
			s = host.CreateAnd(a, b)
		}
		memo[idx] = s
		return s
	}
	out := build(tmplSig.Index())
	return out.Xor(tmplSig.IsComplement())
}
