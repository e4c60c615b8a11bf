package review

import (
	"strings"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/gitctx"
	"github.com/tmorelli/nitpick/internal/redact"
)

// Analyze applies the rule sequence to each changed line of one file
// and returns the raw findings. Every matching rule yields one finding;
// a line with no match yields nothing. Line numbers outside the content
// are ignored. Snippets are redacted so secret values never reach a
// report. The function reads no shared mutable state, so files can be
// analyzed concurrently.
func Analyze(fc gitctx.FileChange, content string, rules []catalog.Rule) []Finding {
	lines := strings.Split(content, "\n")

	var findings []Finding
	for _, lineNo := range fc.Lines {
		idx := lineNo - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		line := lines[idx]
		for order, rule := range rules {
			w := window(lines, idx, rule.WindowSize)
			if !rule.Matches(line, w) {
				continue
			}
			findings = append(findings, Finding{
				FilePath:    fc.Path,
				Line:        lineNo,
				RuleID:      rule.ID,
				Severity:    rule.Severity,
				Category:    rule.Category,
				OWASP:       rule.OWASP,
				Description: rule.Description,
				Suggestion:  rule.Suggestion,
				Status:      fc.Status,
				Snippet:     redact.Snippet(strings.TrimRight(line, "\r")),
				ruleOrder:   order,
			})
		}
	}
	return findings
}

// window collects up to size lines on each side of idx. Before holds
// the nearest preceding line last, After the nearest following line
// first.
func window(lines []string, idx, size int) catalog.Window {
	if size == 0 {
		return catalog.Window{}
	}
	start := idx - size
	if start < 0 {
		start = 0
	}
	end := idx + size + 1
	if end > len(lines) {
		end = len(lines)
	}
	return catalog.Window{
		Before: lines[start:idx],
		After:  lines[idx+1 : end],
	}
}
