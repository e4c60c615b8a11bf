package review

import (
	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/gitctx"
)

// Finding is a single reported issue at a specific file and line. It is
// never mutated after creation; the aggregator only selects, orders,
// and counts findings.
type Finding struct {
	FilePath    string              `json:"path"`
	Line        int                 `json:"line"`
	RuleID      string              `json:"ruleId"`
	Severity    catalog.Severity    `json:"severity"`
	Category    catalog.Category    `json:"category"`
	OWASP       string              `json:"owasp,omitempty"`
	Description string              `json:"description"`
	Suggestion  string              `json:"suggestion,omitempty"`
	Status      gitctx.ChangeStatus `json:"changeStatus"`
	Snippet     string              `json:"snippet,omitempty"`

	// ruleOrder is the rule's index in its language's catalog sequence;
	// it is the presentation tie-break for multiple matches on one line.
	ruleOrder int
}

// Report is the aggregated output of one analysis run, consumed
// identically by every renderer.
type Report struct {
	RunID          string                   `json:"runId"`
	SourceRef      string                   `json:"sourceRef"`
	TargetRef      string                   `json:"targetRef"`
	FilesAnalyzed  int                      `json:"filesAnalyzed"`
	SkippedFiles   int                      `json:"skippedFiles"`
	Warnings       []string                 `json:"warnings,omitempty"`
	Findings       []Finding                `json:"findings"`
	SeverityCounts map[catalog.Severity]int `json:"severityCounts"`
	CategoryCounts map[catalog.Category]int `json:"categoryCounts"`
	DurationMs     int64                    `json:"durationMs"`
}

// HighestSeverity returns the most severe level present in the report,
// or "" when there are no findings.
func (r *Report) HighestSeverity() catalog.Severity {
	var highest catalog.Severity
	for sev := range r.SeverityCounts {
		if r.SeverityCounts[sev] > 0 && catalog.SeverityRank(sev) > catalog.SeverityRank(highest) {
			highest = sev
		}
	}
	return highest
}
