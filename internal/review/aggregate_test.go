package review

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/gitctx"
)

func mkFinding(path string, line int, rule string, sev catalog.Severity, cat catalog.Category, order int) Finding {
	return Finding{
		FilePath:  path,
		Line:      line,
		RuleID:    rule,
		Severity:  sev,
		Category:  cat,
		Status:    gitctx.StatusCommitted,
		ruleOrder: order,
	}
}

func TestAggregateSortOrder(t *testing.T) {
	batches := [][]Finding{
		{
			mkFinding("b.py", 5, "py-print", catalog.SeverityLow, catalog.CategoryStyle, 9),
			mkFinding("a.py", 9, "py-eval", catalog.SeverityCritical, catalog.CategorySecurity, 2),
		},
		{
			mkFinding("a.py", 3, "py-os-system", catalog.SeverityHigh, catalog.CategorySecurity, 4),
			mkFinding("b.py", 1, "py-pickle-load", catalog.SeverityHigh, catalog.CategorySecurity, 6),
		},
	}
	report := Aggregate(batches, 2)

	var got []string
	for _, f := range report.Findings {
		got = append(got, f.RuleID)
	}
	assert.Equal(t, []string{"py-eval", "py-os-system", "py-pickle-load", "py-print"}, got)
}

func TestAggregateTieBreakCatalogOrder(t *testing.T) {
	// Two findings on the same file and line with equal severity: the
	// lower catalog index comes first.
	batches := [][]Finding{{
		mkFinding("a.js", 7, "second-rule", catalog.SeverityMedium, catalog.CategorySecurity, 5),
		mkFinding("a.js", 7, "first-rule", catalog.SeverityMedium, catalog.CategoryPerformance, 1),
	}}
	report := Aggregate(batches, 1)

	require.Len(t, report.Findings, 2)
	assert.Equal(t, "first-rule", report.Findings[0].RuleID)
	assert.Equal(t, "second-rule", report.Findings[1].RuleID)
}

func TestAggregateDeduplicates(t *testing.T) {
	f := mkFinding("a.py", 3, "py-eval", catalog.SeverityCritical, catalog.CategorySecurity, 2)
	report := Aggregate([][]Finding{{f, f}, {f}}, 1)

	assert.Len(t, report.Findings, 1)
	assert.Equal(t, 1, report.SeverityCounts[catalog.SeverityCritical])
}

func TestAggregatePermutationIndependent(t *testing.T) {
	findings := []Finding{
		mkFinding("a.py", 1, "py-eval", catalog.SeverityCritical, catalog.CategorySecurity, 2),
		mkFinding("a.py", 1, "gen-todo-marker", catalog.SeverityLow, catalog.CategoryMaintainability, 20),
		mkFinding("b.js", 4, "js-innerhtml", catalog.SeverityHigh, catalog.CategorySecurity, 5),
		mkFinding("b.js", 2, "js-var-decl", catalog.SeverityLow, catalog.CategoryStyle, 15),
		mkFinding("c.rs", 8, "rust-unwrap", catalog.SeverityMedium, catalog.CategoryMaintainability, 4),
	}

	baseline := Aggregate([][]Finding{findings}, 3)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Finding, len(findings))
		copy(shuffled, findings)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		report := Aggregate([][]Finding{shuffled}, 3)

		assert.Equal(t, baseline.Findings, report.Findings, "trial %d", trial)
		assert.Equal(t, baseline.SeverityCounts, report.SeverityCounts)
		assert.Equal(t, baseline.CategoryCounts, report.CategoryCounts)
	}
}

func TestAggregateCountsSumToFindings(t *testing.T) {
	batches := [][]Finding{{
		mkFinding("a.py", 1, "py-eval", catalog.SeverityCritical, catalog.CategorySecurity, 2),
		mkFinding("a.py", 2, "py-print", catalog.SeverityLow, catalog.CategoryStyle, 9),
		mkFinding("b.py", 1, "py-assert", catalog.SeverityLow, catalog.CategoryMaintainability, 8),
	}}
	report := Aggregate(batches, 5)

	sevTotal, catTotal := 0, 0
	for _, n := range report.SeverityCounts {
		sevTotal += n
	}
	for _, n := range report.CategoryCounts {
		catTotal += n
	}
	assert.Equal(t, len(report.Findings), sevTotal)
	assert.Equal(t, len(report.Findings), catTotal)
}

func TestAggregateCountsZeroFindingFiles(t *testing.T) {
	report := Aggregate([][]Finding{nil, nil, nil}, 3)
	assert.Equal(t, 3, report.FilesAnalyzed)
	assert.Empty(t, report.Findings)
	assert.NotNil(t, report.Findings)
}

func TestHighestSeverity(t *testing.T) {
	report := Aggregate([][]Finding{{
		mkFinding("a.py", 1, "py-print", catalog.SeverityLow, catalog.CategoryStyle, 9),
		mkFinding("a.py", 2, "py-os-system", catalog.SeverityHigh, catalog.CategorySecurity, 4),
	}}, 1)
	assert.Equal(t, catalog.SeverityHigh, report.HighestSeverity())

	empty := Aggregate(nil, 0)
	assert.Equal(t, catalog.Severity(""), empty.HighestSeverity())
}
