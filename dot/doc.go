// Package dot dumps a k-LUT mapping as a GraphViz DOT graph for visual
// debugging: one node per cell plus one per primary input/output, solid
// edges from each cell to its fanin leaves, and a dashed edge from a
// primary output to its driver whenever that connection is complemented.
// Grounded on gaissmai/bart's dumper.go writer idiom.
package dot
