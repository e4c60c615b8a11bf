// Nitpick is a diff-aware CLI that reviews changed lines between git refs
// against a catalog of language-specific and generic rules.
//
// It folds committed, staged, and unstaged work into one change set, checks
// only the lines that actually changed, and emits structured findings with
// deterministic exit codes suitable for CI gating.
//
// Usage:
//
//	nitpick scan --source main --target HEAD   # analyze changes since main
//	nitpick scan --format sarif --out out.sarif
//	nitpick rules --lang python                # list applicable rules
//	nitpick config init                        # write a default config file
//
// See https://github.com/tmorelli/nitpick for full documentation.
package main
