package verilog

import (
	"fmt"
	"io"
	"math/big"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/klut"
)

// netNamer assigns stable Verilog net names to graph node indices: pi<i>
// for the i-th primary input, po<i> is reserved for module output ports,
// and n<id> for every other referenced internal node.
type netNamer struct {
	piOrdinal map[aig.ID]int
}

func newNetNamer(g *aig.Graph) *netNamer {
	nn := &netNamer{piOrdinal: make(map[aig.ID]int, g.NumPIs())}
	g.ForEachPI(func(id aig.ID) {
		nn.piOrdinal[id] = len(nn.piOrdinal)
	})
	return nn
}

func (nn *netNamer) net(id aig.ID) string {
	if i, ok := nn.piOrdinal[id]; ok {
		return fmt.Sprintf("pi%d", i)
	}
	return fmt.Sprintf("n%d", id)
}

func (nn *netNamer) literal(s aig.Signal) string {
	if s.Index() == 0 {
		if s.IsComplement() {
			return "1'b1"
		}
		return "1'b0"
	}
	name := nn.net(s.Index())
	if s.IsComplement() {
		return "~" + name
	}
	return name
}

func hexTruth(words []uint64, nVars uint) string {
	nBits := 1 << nVars
	nHex := (nBits + 3) / 4

	bi := new(big.Int)
	word := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		bi.Lsh(bi, 64)
		word.SetUint64(words[i])
		bi.Or(bi, word)
	}
	s := bi.Text(16)
	for len(s) < nHex {
		s = "0" + s
	}
	return s
}

// Write emits m as a single Verilog module: one input port per g's
// primary input, one output port per mapped PO, an internal wire per
// cell, and one LUTk primitive instance (or a passthrough assign for a
// cell with no truth table or no leaves) per cell, realizing its truth table as a
// sized hex INIT parameter (spec.md §6 "write_verilog").
func Write(w io.Writer, moduleName string, g *aig.Graph, m *klut.Mapping) error {
	nn := newNetNamer(g)

	ports := make([]string, 0, g.NumPIs()+len(m.POs))
	for i := 0; i < g.NumPIs(); i++ {
		ports = append(ports, fmt.Sprintf("pi%d", i))
	}
	for i := range m.POs {
		ports = append(ports, fmt.Sprintf("po%d", i))
	}

	if _, err := fmt.Fprintf(w, "module %s(\n", escapeIdent(moduleName)); err != nil {
		return err
	}
	for i, p := range ports {
		sep := ","
		if i == len(ports)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "    %s%s\n", p, sep); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, ");\n"); err != nil {
		return err
	}

	for i := 0; i < g.NumPIs(); i++ {
		if _, err := fmt.Fprintf(w, "    input pi%d;\n", i); err != nil {
			return err
		}
	}
	for i := range m.POs {
		if _, err := fmt.Fprintf(w, "    output po%d;\n", i); err != nil {
			return err
		}
	}

	for _, c := range m.Cells {
		if _, err := fmt.Fprintf(w, "    wire %s;\n", nn.net(c.Root)); err != nil {
			return err
		}
	}

	for _, c := range m.Cells {
		out := nn.net(c.Root)
		if !c.HasTruth || len(c.Leaves) == 0 {
			leaf := out
			if len(c.Leaves) == 1 {
				leaf = nn.net(c.Leaves[0])
			}
			if _, err := fmt.Fprintf(w, "    assign %s = %s;\n", out, leaf); err != nil {
				return err
			}
			continue
		}

		nVars, words := m.Truths.Get(c.Truth)
		init := hexTruth(words, nVars)
		k := len(c.Leaves)

		if _, err := fmt.Fprintf(w, "    LUT%d #(.INIT(%d'h%s)) u_%s (\n", k, 1<<uint(nVars), init, out); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "        .O(%s)", out); err != nil {
			return err
		}
		for i, leaf := range c.Leaves {
			if _, err := fmt.Fprintf(w, ",\n        .I%d(%s)", i, nn.net(leaf)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n    );\n"); err != nil {
			return err
		}
	}

	for i, s := range m.POs {
		if _, err := fmt.Fprintf(w, "    assign po%d = %s;\n", i, nn.literal(s)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "endmodule\n")
	return err
}
