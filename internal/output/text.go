package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmorelli/nitpick/internal/review"
)

// SummaryWriter outputs a compact counts-only report.
type SummaryWriter struct{}

func (s *SummaryWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}
	writeHeader(ew, report)

	if len(report.Findings) == 0 {
		ew.println("\nNo issues found. Looks good!")
		return ew.err
	}

	ew.println("\nBy severity:")
	for _, sev := range severityOrder {
		if n := report.SeverityCounts[sev]; n > 0 {
			ew.printf("  %s %-8s %d\n", severityIcon(sev), sev, n)
		}
	}
	ew.println("\nBy category:")
	for _, cat := range categoryOrder {
		if n := report.CategoryCounts[cat]; n > 0 {
			ew.printf("  %-15s %d\n", cat, n)
		}
	}
	return ew.err
}

// DetailedWriter outputs every finding with its snippet and suggestion.
type DetailedWriter struct{}

func (t *DetailedWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}
	writeHeader(ew, report)

	if len(report.Findings) == 0 {
		ew.println("\nNo issues found. Looks good!")
		return ew.err
	}

	currentSev := ""
	for _, f := range report.Findings {
		if string(f.Severity) != currentSev {
			currentSev = string(f.Severity)
			ew.printf("\n%s %s\n", severityIcon(f.Severity), strings.ToUpper(currentSev))
			ew.println(strings.Repeat("─", 40))
		}

		ew.printf("\n  %s:%d  [%s] %s", f.FilePath, f.Line, f.RuleID, f.Description)
		if f.OWASP != "" {
			ew.printf(" (OWASP %s)", f.OWASP)
		}
		ew.println("")
		ew.printf("  Category: %s | Change: %s\n", f.Category, f.Status)
		if f.Snippet != "" {
			ew.printf("    > %s\n", strings.TrimSpace(f.Snippet))
		}
		if f.Suggestion != "" {
			ew.printf("    Suggestion: %s\n", f.Suggestion)
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms\n", report.DurationMs)
	return ew.err
}

func writeHeader(ew *errWriter, report *review.Report) {
	ew.printf("nitpick review %s..%s\n", report.SourceRef, report.TargetRef)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Files analyzed: %d", report.FilesAnalyzed)
	if report.SkippedFiles > 0 {
		ew.printf(" (%d skipped)", report.SkippedFiles)
	}
	ew.println("")
	ew.printf("Findings: %d\n", len(report.Findings))
	ew.println(strings.Repeat("─", 60))
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
