// Command imap is the interactive CLI shell driving the core library:
// one line per command, each parsed with its own flag.FlagSet, matching
// the command surface observed in the source (spec.md §6 "CLI
// surface"). Unknown commands or out-of-range parameters print a
// warning and return without touching the core network, rather than
// exiting the shell (spec.md §7 "the front-end rejects before calling
// the core").
package main
