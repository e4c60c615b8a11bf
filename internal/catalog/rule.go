package catalog

import (
	"regexp"
	"unicode/utf8"

	"github.com/tmorelli/nitpick/internal/lang"
)

// Severity classifies how serious a finding is. The rank order is baked
// into SeverityRank: Critical > High > Medium > Low > Info.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// MeetsThreshold returns true if severity is at or above the threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	return SeverityRank(s) >= SeverityRank(Severity(threshold))
}

// Category is the closed set of finding categories.
type Category string

const (
	CategorySecurity        Category = "security"
	CategoryPerformance     Category = "performance"
	CategoryMaintainability Category = "maintainability"
	CategoryStyle           Category = "style"
	CategoryTesting         Category = "testing"
	CategoryDocumentation   Category = "documentation"
)

// Window carries the lines immediately surrounding the line under
// evaluation, for rules that need neighboring context. Before holds up
// to WindowSize preceding lines with the nearest line last; After holds
// up to WindowSize following lines with the nearest line first.
type Window struct {
	Before []string
	After  []string
}

// MatchFunc is a structural predicate over a line and its bounded
// context window. Implementations must be side-effect-free.
type MatchFunc func(line string, w Window) bool

// Rule binds a matcher to the metadata attached to every finding it
// produces. Exactly one of Pattern or Match is set. Rules are immutable
// after catalog construction.
type Rule struct {
	ID          string
	Language    lang.Language
	Category    Category
	Severity    Severity
	OWASP       string // "A01".."A10" for security rules, else empty
	Pattern     *regexp.Regexp
	Match       MatchFunc
	WindowSize  int // neighbor lines the matcher needs; 0 = single line
	Description string
	Suggestion  string
}

// Matches evaluates the rule against one line. Lines that are not valid
// UTF-8 never match: a matcher that cannot evaluate a line treats it as
// clean rather than failing the file.
func (r *Rule) Matches(line string, w Window) bool {
	if !utf8.ValidString(line) {
		return false
	}
	if r.Match != nil {
		return r.Match(line, w)
	}
	return r.Pattern.MatchString(line)
}
