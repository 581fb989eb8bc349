package aiger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

// WriteASCII emits g in the AIGER "aag" text format.
func WriteASCII(w io.Writer, g *aig.Graph) error {
	bw := bufio.NewWriter(w)
	varOf := buildVarTable(g)
	numAnd := g.Size() - 1 - g.NumPIs() - g.NumDead()

	if _, err := fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", g.NumPIs()+numAnd, g.NumPIs(), g.NumPOs(), numAnd); err != nil {
		return err
	}
	var ferr error
	g.ForEachPI(func(id aig.ID) {
		if ferr != nil {
			return
		}
		_, ferr = fmt.Fprintf(bw, "%d\n", literalOf(varOf, aig.NewSignal(id, false)))
	})
	if ferr != nil {
		return ferr
	}
	g.ForEachPO(func(i int, s aig.Signal) {
		if ferr != nil {
			return
		}
		_, ferr = fmt.Fprintf(bw, "%d\n", literalOf(varOf, s))
	})
	if ferr != nil {
		return ferr
	}
	g.ForEachGate(func(id aig.ID) {
		if ferr != nil {
			return
		}
		l0, l1 := gateLiterals(g, varOf, id)
		lhs := varOf[id] << 1
		_, ferr = fmt.Fprintf(bw, "%d %d %d\n", lhs, l0, l1)
	})
	if ferr != nil {
		return ferr
	}
	return bw.Flush()
}

// WriteBinary emits g in the AIGER "aig" binary format: the header and
// output literals stay ASCII text; the AND section is a sequence of
// 7-bit-varint-encoded (lhs-lit0, lit0-lit1) deltas (spec.md §6).
func WriteBinary(w io.Writer, g *aig.Graph) error {
	bw := bufio.NewWriter(w)
	varOf := buildVarTable(g)
	numAnd := g.Size() - 1 - g.NumPIs() - g.NumDead()

	if _, err := fmt.Fprintf(bw, "aig %d %d 0 %d %d\n", g.NumPIs()+numAnd, g.NumPIs(), g.NumPOs(), numAnd); err != nil {
		return err
	}
	var ferr error
	g.ForEachPO(func(i int, s aig.Signal) {
		if ferr != nil {
			return
		}
		_, ferr = fmt.Fprintf(bw, "%d\n", literalOf(varOf, s))
	})
	if ferr != nil {
		return ferr
	}
	g.ForEachGate(func(id aig.ID) {
		if ferr != nil {
			return
		}
		l0, l1 := gateLiterals(g, varOf, id)
		lhs := varOf[id] << 1
		if ferr = writeVarint(bw, lhs-l0); ferr != nil {
			return
		}
		ferr = writeVarint(bw, l0-l1)
	})
	if ferr != nil {
		return ferr
	}
	return bw.Flush()
}

// gateLiterals returns id's two fanin literals ordered lit0 >= lit1, the
// ordering AIGER's delta encoding (and the ASCII format itself) requires
// regardless of the graph's own internal child ordering (spec.md §6:
// "lit_lhs > lit0 >= lit1").
func gateLiterals(g *aig.Graph, varOf []uint32, id aig.ID) (lit0, lit1 uint32) {
	c0, c1 := g.Children(id)
	l0, l1 := literalOf(varOf, c0), literalOf(varOf, c1)
	if l0 < l1 {
		l0, l1 = l1, l0
	}
	return l0, l1
}
