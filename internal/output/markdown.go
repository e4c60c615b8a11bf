package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/review"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *review.Report) error {
	fmt.Fprintf(w, "## nitpick review `%s..%s`\n\n", report.SourceRef, report.TargetRef)

	fmt.Fprintf(w, "| Severity | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	for _, sev := range severityOrder {
		fmt.Fprintf(w, "| %s | %d |\n", capitalize(string(sev)), report.SeverityCounts[sev])
	}
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", len(report.Findings))

	fmt.Fprintf(w, "Files analyzed: %d", report.FilesAnalyzed)
	if report.SkippedFiles > 0 {
		fmt.Fprintf(w, " (%d skipped)", report.SkippedFiles)
	}
	fmt.Fprintf(w, "\n\n")

	if len(report.Findings) == 0 {
		fmt.Fprintln(w, "No issues found. :white_check_mark:")
		return nil
	}

	grouped := make(map[catalog.Severity][]review.Finding)
	for _, f := range report.Findings {
		grouped[f.Severity] = append(grouped[f.Severity], f)
	}

	for _, sev := range severityOrder {
		findings := grouped[sev]
		if len(findings) == 0 {
			continue
		}

		fmt.Fprintf(w, "<details>\n<summary>%s %s (%d)</summary>\n\n",
			mdSeverityIcon(sev), strings.ToUpper(string(sev)), len(findings))

		for _, f := range findings {
			fmt.Fprintf(w, "**`%s:%d`** %s", f.FilePath, f.Line, f.Description)
			if f.OWASP != "" {
				fmt.Fprintf(w, " _(OWASP %s)_", f.OWASP)
			}
			fmt.Fprintf(w, "\n\n")
			if f.Snippet != "" {
				fmt.Fprintf(w, "```\n%s\n```\n\n", strings.TrimSpace(f.Snippet))
			}
			if f.Suggestion != "" {
				fmt.Fprintf(w, "> %s\n\n", f.Suggestion)
			}
			fmt.Fprintf(w, "---\n\n")
		}

		fmt.Fprintf(w, "</details>\n\n")
	}

	fmt.Fprintf(w, "*Analyzed in %dms*\n", report.DurationMs)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func mdSeverityIcon(s catalog.Severity) string {
	switch s {
	case catalog.SeverityCritical:
		return ":no_entry:"
	case catalog.SeverityHigh:
		return ":red_circle:"
	case catalog.SeverityMedium:
		return ":orange_circle:"
	case catalog.SeverityLow:
		return ":yellow_circle:"
	default:
		return ":white_circle:"
	}
}
