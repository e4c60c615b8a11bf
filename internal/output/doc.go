// Package output renders analysis reports for display or machine
// consumption.
//
// Five formats are supported:
//   - summary  — counts by severity and category (default)
//   - detailed — every finding with snippet and suggestion
//   - json     — full structured JSON report
//   - markdown — PR-comment-friendly with collapsible sections per severity
//   - sarif    — SARIF v2.1.0 for upload to CI code-scanning tools
//
// Use [GetWriter] to obtain a [Writer] for a format string, then call
// [Writer.Write] with an [io.Writer] and a [*review.Report].
// [WriteReport] handles destination selection.
package output
