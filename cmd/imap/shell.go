package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/config"
	"github.com/OSCC-Project/iMap-sub000/flowmgr"
)

// shell holds the interpreter's session state: the working manager (nil
// until a read_aiger succeeds), the active configuration, and the log
// sink commands report through.
type shell struct {
	mgr *flowmgr.Manager
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

func newShell(cfg *config.Config, out io.Writer) *shell {
	level := slog.LevelWarn
	if cfg.FlowManager.Verbose {
		level = slog.LevelInfo
	}
	if cfg.FlowManager.VeryVerbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return &shell{cfg: cfg, log: slog.New(h), out: out}
}

// run drives the read-eval-print loop: one command per line, blank
// lines and lines starting with "#" are skipped.
func (s *shell) run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.dispatch(line)
	}
}

// dispatch splits one input line into a command name and its
// arguments, then runs the matching handler. An unknown command, a
// missing working graph, or an out-of-range parameter all print a
// warning and return without reaching the core (spec.md §7).
func (s *shell) dispatch(line string) {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	cmd, ok := commands[name]
	if !ok {
		s.warn("unknown command %q", name)
		return
	}
	if cmd.needsGraph && s.mgr == nil {
		s.warn("%s: no AIG loaded, run read_aiger first", name)
		return
	}
	if err := cmd.run(s, args); err != nil {
		s.warn("%s: %v", name, err)
	}
}

func (s *shell) warn(format string, a ...any) {
	fmt.Fprintf(s.out, "warning: "+format+"\n", a...)
}

func (s *shell) infof(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

func (s *shell) setGraph(g *aig.Graph) {
	s.mgr = flowmgr.New(g, s.cfg)
}

func main() {
	cfgPath := flag.String("config", "", "JSON config file overlaying the defaults")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "imap: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	s := newShell(cfg, os.Stdout)
	s.run(os.Stdin)
}
