// Package flowmgr orchestrates the optimization flow around the core
// passes: Balance, Rewrite, Refactor and k-LUT mapping, plus the
// compress/compress2 recipes and the three-snapshot choice computation
// feeding the mapper (spec.md §4.6, §6's flow_manager.* keys, and the
// source's flow_manager.hpp run()). A Manager holds one current working
// AIG plus a bounded history of past snapshots for the history command.
package flowmgr
