package dot

import (
	"fmt"
	"io"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/klut"
)

func nodeID(id aig.ID) string { return fmt.Sprintf("n%d", id) }

// Write emits m as a DOT digraph: a box per cell labeled LUT<leaf count>
// (or "buf" when the cell has no truth table), an inverted triangle per
// primary input, a triangle per primary output, and edges following fanin.
func Write(w io.Writer, graphName string, g *aig.Graph, m *klut.Mapping) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", graphName); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "    rankdir=BT;\n"); err != nil {
		return err
	}

	piOrdinal := 0
	var ferr error
	g.ForEachPI(func(id aig.ID) {
		if ferr != nil {
			return
		}
		_, ferr = fmt.Fprintf(w, "    %s [shape=invtriangle,label=\"pi%d\"];\n", nodeID(id), piOrdinal)
		piOrdinal++
	})
	if ferr != nil {
		return ferr
	}

	for _, c := range m.Cells {
		label := fmt.Sprintf("LUT%d", len(c.Leaves))
		if !c.HasTruth {
			label = "buf"
		}
		if _, err := fmt.Fprintf(w, "    %s [shape=box,label=\"%s\"];\n", nodeID(c.Root), label); err != nil {
			return err
		}
		for _, leaf := range c.Leaves {
			if _, err := fmt.Fprintf(w, "    %s -> %s;\n", nodeID(c.Root), nodeID(leaf)); err != nil {
				return err
			}
		}
	}

	for i, s := range m.POs {
		poName := fmt.Sprintf("po%d", i)
		if _, err := fmt.Fprintf(w, "    %s [shape=triangle,label=\"%s\"];\n", poName, poName); err != nil {
			return err
		}
		style := ""
		if s.IsComplement() {
			style = " [style=dashed]"
		}
		driver := "n0"
		if s.Index() != 0 {
			driver = nodeID(s.Index())
		}
		if _, err := fmt.Fprintf(w, "    %s -> %s%s;\n", poName, driver, style); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "}\n")
	return err
}
