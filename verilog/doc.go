// Package verilog dumps a k-LUT mapping as synthesizable Verilog: one
// LUTk primitive instance per cell, its INIT parameter the cell's truth
// table as a sized hex literal, module ports for every primary input and
// output, and internal wires for everything in between (spec.md §6
// "write_verilog"). Identifier escaping and the writer/error-return shape
// follow gaissmai/bart's dumper.go convention.
package verilog
