package review

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/tmorelli/nitpick/internal/catalog"
)

// Aggregate merges per-file finding batches into a Report. It
// deduplicates exact duplicates (same file, line, rule), sorts by
// severity rank descending, then path, then line, then catalog order,
// and tallies severity and category counts. The result depends only on
// the multiset of findings, never on input order.
//
// filesAnalyzed counts every file that went through analysis, including
// files that produced no findings.
func Aggregate(batches [][]Finding, filesAnalyzed int) *Report {
	var all []Finding
	seen := make(map[string]bool)
	for _, batch := range batches {
		for _, f := range batch {
			key := fmt.Sprintf("%s:%d:%s", f.FilePath, f.Line, f.RuleID)
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, f)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if ra, rb := catalog.SeverityRank(a.Severity), catalog.SeverityRank(b.Severity); ra != rb {
			return ra > rb
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.ruleOrder != b.ruleOrder {
			return a.ruleOrder < b.ruleOrder
		}
		return a.RuleID < b.RuleID
	})

	report := &Report{
		RunID:          uuid.NewString(),
		FilesAnalyzed:  filesAnalyzed,
		Findings:       all,
		SeverityCounts: make(map[catalog.Severity]int),
		CategoryCounts: make(map[catalog.Category]int),
	}
	for _, f := range all {
		report.SeverityCounts[f.Severity]++
		report.CategoryCounts[f.Category]++
	}
	if report.Findings == nil {
		report.Findings = []Finding{}
	}
	return report
}
