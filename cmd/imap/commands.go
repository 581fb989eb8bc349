package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/OSCC-Project/iMap-sub000/aiger"
	"github.com/OSCC-Project/iMap-sub000/dot"
	"github.com/OSCC-Project/iMap-sub000/equivalence"
	"github.com/OSCC-Project/iMap-sub000/klut"
	"github.com/OSCC-Project/iMap-sub000/refactor"
	"github.com/OSCC-Project/iMap-sub000/rewrite"
	"github.com/OSCC-Project/iMap-sub000/verilog"
)

// command bundles a handler with whether it requires a working graph to
// already be loaded (everything except read_aiger does).
type command struct {
	needsGraph bool
	run        func(s *shell, args []string) error
}

// lastMapping is set by map_fpga/lut_opt and consumed by write_fpga,
// write_verilog and write_dot; it is per-process state because the
// shell interprets one AIG at a time (spec.md §6).
var lastMapping *klut.Mapping

var commands map[string]command

func init() {
	commands = map[string]command{
		"read_aiger":    {false, cmdReadAiger},
		"write_aiger":   {true, cmdWriteAiger},
		"write_fpga":    {true, cmdWriteFPGA},
		"write_verilog": {true, cmdWriteVerilog},
		"write_dot":     {true, cmdWriteDot},
		"balance":       {true, cmdBalance},
		"rewrite":       {true, cmdRewrite},
		"refactor":      {true, cmdRefactor},
		"lut_opt":       {true, cmdLutOpt},
		"map_fpga":      {true, cmdMapFPGA},
		"cleanup":       {true, cmdCleanup},
		"history":       {true, cmdHistory},
		"print_stats":   {true, cmdPrintStats},
	}
}

// inRange prints the out-of-range warning spec.md §7 requires ("the CLI
// layer prints a warning and returns without invoking the core") and
// reports whether v passed.
func inRange(s *shell, name string, v, lo, hi int) bool {
	if v < lo || v > hi {
		s.warn("%s=%d out of range [%d,%d]", name, v, lo, hi)
		return false
	}
	return true
}

func cmdReadAiger(s *shell, args []string) error {
	fs := flag.NewFlagSet("read_aiger", flag.ContinueOnError)
	path := fs.String("f", "", "AIGER file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-f is required")
	}
	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := aiger.Read(f)
	if err != nil {
		return err
	}
	s.setGraph(g)
	lastMapping = nil
	s.infof("read %d PIs, %d POs, %d nodes", g.NumPIs(), g.NumPOs(), g.Size())
	return nil
}

func cmdWriteAiger(s *shell, args []string) error {
	fs := flag.NewFlagSet("write_aiger", flag.ContinueOnError)
	path := fs.String("f", "", "output path")
	format := fs.Int("t", 0, "0=ASCII, 1=binary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-f is required")
	}
	if !inRange(s, "t", *format, 0, 1) {
		return nil
	}
	f, err := os.Create(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	if *format == 1 {
		return aiger.WriteBinary(f, s.mgr.Current())
	}
	return aiger.WriteASCII(f, s.mgr.Current())
}

// cmdWriteFPGA writes the AIG reconstructed from the most recent k-LUT
// mapping (map_fpga/lut_opt), so the mapped network's structure can be
// inspected in AIGER form; it is an error to call it before a mapping
// has been computed.
func cmdWriteFPGA(s *shell, args []string) error {
	fs := flag.NewFlagSet("write_fpga", flag.ContinueOnError)
	path := fs.String("f", "", "output path")
	format := fs.Int("t", 0, "0=ASCII, 1=binary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-f is required")
	}
	if !inRange(s, "t", *format, 0, 1) {
		return nil
	}
	if lastMapping == nil {
		return fmt.Errorf("no k-LUT mapping yet, run map_fpga or lut_opt first")
	}
	collapsed := equivalence.Collapse(s.mgr.Current(), lastMapping)

	f, err := os.Create(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	if *format == 1 {
		return aiger.WriteBinary(f, collapsed)
	}
	return aiger.WriteASCII(f, collapsed)
}

func cmdWriteVerilog(s *shell, args []string) error {
	fs := flag.NewFlagSet("write_verilog", flag.ContinueOnError)
	path := fs.String("f", "", "output path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-f is required")
	}
	if lastMapping == nil {
		return fmt.Errorf("no k-LUT mapping yet, run map_fpga or lut_opt first")
	}
	f, err := os.Create(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	return verilog.Write(f, "top", s.mgr.Current(), lastMapping)
}

func cmdWriteDot(s *shell, args []string) error {
	fs := flag.NewFlagSet("write_dot", flag.ContinueOnError)
	path := fs.String("f", "", "output path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-f is required")
	}
	if lastMapping == nil {
		return fmt.Errorf("no k-LUT mapping yet, run map_fpga or lut_opt first")
	}
	f, err := os.Create(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dot.Write(f, "top", s.mgr.Current(), lastMapping)
}

func cmdBalance(s *shell, args []string) error {
	s.mgr.Balance()
	s.infof("balance: %d nodes", s.mgr.Current().Size())
	return nil
}

func cmdRewrite(s *shell, args []string) error {
	fs := flag.NewFlagSet("rewrite", flag.ContinueOnError)
	cutSize := fs.Int("C", 4, "cut leaf bound K")
	cutLimit := fs.Int("P", 8, "per-node cut-set capacity L")
	fs.Bool("l", false, "unused: accepted for CLI-surface parity")
	fs.Bool("z", false, "unused: accepted for CLI-surface parity")
	verbose := fs.Bool("v", false, "verbose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !inRange(s, "K", *cutSize, 2, 8) || !inRange(s, "L", *cutLimit, 6, 20) {
		return nil
	}
	n := s.mgr.Rewrite(rewrite.Params{K: *cutSize, L: *cutLimit})
	if *verbose {
		s.infof("rewrite: %d substitutions", n)
	}
	return nil
}

func cmdRefactor(s *shell, args []string) error {
	fs := flag.NewFlagSet("refactor", flag.ContinueOnError)
	iMax := fs.Int("I", 8, "max leaves")
	coneMax := fs.Int("C", 20, "max cone size")
	allowDepthUp := fs.Bool("l", false, "allow depth increase")
	zeroGain := fs.Bool("z", false, "allow zero-gain substitution")
	verbose := fs.Bool("v", false, "verbose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !inRange(s, "I", *iMax, 1, 12) || !inRange(s, "cone", *coneMax, 1, 20) {
		return nil
	}
	n := s.mgr.Refactor(refactor.Params{
		IMax:          *iMax,
		ConeMax:       *coneMax,
		AllowZeroGain: *zeroGain,
		AllowDepthUp:  *allowDepthUp,
	})
	if *verbose {
		s.infof("refactor: %d substitutions", n)
	}
	return nil
}

func cmdLutOpt(s *shell, args []string) error {
	fs := flag.NewFlagSet("lut_opt", flag.ContinueOnError)
	cutSize := fs.Int("C", 6, "LUT input bound K")
	cutLimit := fs.Int("P", 8, "per-node cut-set capacity L")
	fs.Bool("z", false, "unused: accepted for CLI-surface parity")
	verbose := fs.Bool("v", false, "verbose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !inRange(s, "K", *cutSize, 2, 8) || !inRange(s, "L", *cutLimit, 6, 20) {
		return nil
	}
	p := klut.DefaultParams()
	p.K, p.L = *cutSize, *cutLimit
	lastMapping = s.mgr.LutOpt(p)
	if *verbose {
		s.infof("lut_opt: %d cells, delay %.2f", len(lastMapping.Cells), lastMapping.Delay)
	}
	return nil
}

func cmdMapFPGA(s *shell, args []string) error {
	fs := flag.NewFlagSet("map_fpga", flag.ContinueOnError)
	cutSize := fs.Int("C", 6, "LUT input bound K")
	cutLimit := fs.Int("P", 8, "per-node cut-set capacity L")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !inRange(s, "K", *cutSize, 2, 8) || !inRange(s, "L", *cutLimit, 6, 20) {
		return nil
	}
	p := klut.DefaultParams()
	p.K, p.L = *cutSize, *cutLimit
	lastMapping = s.mgr.MapFPGA(p)
	s.infof("map_fpga: %d cells, delay %.2f", len(lastMapping.Cells), lastMapping.Delay)
	return nil
}

func cmdCleanup(s *shell, args []string) error {
	dead := s.mgr.Current().NumDead()
	s.mgr.Cleanup()
	s.infof("cleanup: reclaimed %d dead nodes", dead)
	return nil
}

func cmdHistory(s *shell, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	commit := fs.Bool("c", false, "commit current graph")
	show := fs.Bool("s", false, "show history labels")
	activate := fs.Int("a", -1, "activate (restore) slot")
	replace := fs.Int("r", -1, "restore slot, replacing the current graph")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *commit:
		s.mgr.CommitHistory(fmt.Sprintf("snapshot-%d", len(s.mgr.HistoryList())))
	case *show:
		for i, label := range s.mgr.HistoryList() {
			s.infof("%d: %s", i, label)
		}
	case *activate >= 0:
		return s.mgr.RestoreHistory(*activate)
	case *replace >= 0:
		return s.mgr.RestoreHistory(*replace)
	default:
		s.warn("history: one of -c, -s, -a <idx>, -r <idx> is required")
	}
	return nil
}

func cmdPrintStats(s *shell, args []string) error {
	g := s.mgr.Current()
	s.infof("pis=%d pos=%d nodes=%d dead=%d", g.NumPIs(), g.NumPOs(), g.Size(), g.NumDead())
	return nil
}
