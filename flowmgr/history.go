package flowmgr

import "github.com/OSCC-Project/iMap-sub000/aig"

const historyCapacity = 5

// historyEntry is one committed snapshot (spec.md §6 "history" command).
type historyEntry struct {
	label string
	g     *aig.Graph
}

// history is a fixed-capacity ring buffer: committing past capacity
// evicts the oldest entry rather than growing unbounded.
type history struct {
	entries []historyEntry
}

func newHistory() *history {
	return &history{}
}

// commit pushes a clone of g labeled label, evicting the oldest entry
// once the buffer is at capacity.
func (h *history) commit(label string, g *aig.Graph) {
	h.entries = append(h.entries, historyEntry{label: label, g: copyGraph(g)})
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[len(h.entries)-historyCapacity:]
	}
}

// list returns every committed entry's label, oldest first.
func (h *history) list() []string {
	labels := make([]string, len(h.entries))
	for i, e := range h.entries {
		labels[i] = e.label
	}
	return labels
}

// at validates idx against the current entry count before returning
// anything, so a caller restoring from it never partially mutates its
// own state on a bad index.
func (h *history) at(idx int) (*aig.Graph, error) {
	if idx < 0 || idx >= len(h.entries) {
		return nil, errBadHistory
	}
	return copyGraph(h.entries[idx].g), nil
}
