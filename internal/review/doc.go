// Package review is the diff-aware analysis engine: it applies the rule
// catalog to the changed lines of each file in a ChangeSet and
// aggregates the raw findings into a stable, severity-ranked report.
//
// Per-file analysis is independent and side-effect-free, so the engine
// fans out across a bounded worker pool and joins before aggregation:
// the report is only ever built over the complete file set. A file
// whose content cannot be read is skipped and counted, never fatal.
package review
