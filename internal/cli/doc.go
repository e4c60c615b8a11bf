// Package cli wires together the Cobra command tree for the nitpick binary.
//
// It defines the root command and all subcommands (scan, rules, config,
// version), binds flags, reads configuration, invokes the analysis engine,
// and returns deterministic exit codes for CI gating.
package cli
