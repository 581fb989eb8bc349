// Package imap implements an and-inverter-graph optimization and
// k-LUT technology-mapping core: AIGER read/write, structural
// rewriting, reconvergence-driven refactoring, AND-balancing, choice
// synthesis and a multi-pass delay/flow/area k-LUT mapper, driven by
// a compress/compress² flow manager and a line-oriented CLI shell.
//
// The packages are organized by pipeline stage:
//
//	aig/        — node/signal/graph core (strashing, substitution)
//	ttable/     — interned truth-table cache
//	cut/        — bounded cut-set priority collections
//	cutenum/    — topological cut enumeration
//	choice/     — AIG-with-choices view (repr/equiv overlay)
//	dch/        — choice synthesis (simulation classes + SAT)
//	sat/        — CNF construction and a toy DPLL solver
//	balance/    — AND-balancer
//	rewrite/    — NPN-4 structural rewriter
//	refactor/   — cone-based refactorer
//	klut/       — k-input LUT mapper
//	aiger/      — AIGER format reader/writer
//	verilog/    — LUTk-primitive Verilog emitter
//	dot/        — DOT graph emitter
//	config/     — JSON configuration loader
//	flowmgr/    — compress/compress² orchestration over the above
//	cmd/imap/   — CLI shell
package imap
