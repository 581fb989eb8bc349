// Package balance rebuilds each PO's AND cone into a level-minimizing
// tree (spec.md §4.7). For each PO it collects the maximal "implication
// supergate" — the AND-only, single-fanout, uncomplemented-edge subtree
// rooted at the driver — recurses into the supergate's leaves, then
// greedily (Huffman-style) re-pairs the rebuilt leaves by ascending
// level until one signal remains.
package balance
