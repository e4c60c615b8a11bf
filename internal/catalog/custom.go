package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/tmorelli/nitpick/internal/lang"
)

// customFile is the YAML shape of a user rules file.
type customFile struct {
	Rules []customRule `yaml:"rules"`
}

type customRule struct {
	ID          string `yaml:"id"`
	Language    string `yaml:"language"`
	Category    string `yaml:"category"`
	Severity    string `yaml:"severity"`
	OWASP       string `yaml:"owasp"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
	Suggestion  string `yaml:"suggestion"`
}

var validCategories = map[Category]bool{
	CategorySecurity:        true,
	CategoryPerformance:     true,
	CategoryMaintainability: true,
	CategoryStyle:           true,
	CategoryTesting:         true,
	CategoryDocumentation:   true,
}

var validLanguages = map[lang.Language]bool{
	lang.Rust:       true,
	lang.JavaScript: true,
	lang.TypeScript: true,
	lang.Python:     true,
	lang.Generic:    true,
}

// LoadFile reads extra rules from a YAML file. Every rule is validated
// the same way built-ins are: a bad pattern, unknown language, category,
// or severity is a fatal *Error. Returns nil rules for an empty path.
func LoadFile(path string) ([]Rule, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var f customFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	rules := make([]Rule, 0, len(f.Rules))
	for _, cr := range f.Rules {
		r, err := cr.compile()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (cr customRule) compile() (Rule, error) {
	fail := func(format string, args ...any) (Rule, error) {
		return Rule{}, &Error{RuleID: cr.ID, Err: fmt.Errorf(format, args...)}
	}

	l := lang.Language(cr.Language)
	if !validLanguages[l] {
		return fail("unknown language %q", cr.Language)
	}
	if !validCategories[Category(cr.Category)] {
		return fail("unknown category %q", cr.Category)
	}
	if SeverityRank(Severity(cr.Severity)) == 0 {
		return fail("unknown severity %q", cr.Severity)
	}
	if cr.Pattern == "" {
		return fail("missing pattern")
	}
	re, err := regexp.Compile(cr.Pattern)
	if err != nil {
		return fail("invalid pattern: %v", err)
	}

	return Rule{
		ID:          cr.ID,
		Language:    l,
		Category:    Category(cr.Category),
		Severity:    Severity(cr.Severity),
		OWASP:       cr.OWASP,
		Pattern:     re,
		Description: cr.Description,
		Suggestion:  cr.Suggestion,
	}, nil
}
