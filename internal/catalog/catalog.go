package catalog

import (
	"fmt"

	"github.com/tmorelli/nitpick/internal/lang"
)

// Error reports an inconsistent rule definition. It is fatal at process
// start, before any change set is computed.
type Error struct {
	RuleID string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rule catalog: rule %q: %v", e.RuleID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Catalog is the process-wide, read-only rule collection. It is safe to
// share by reference across workers.
type Catalog struct {
	byLang  map[lang.Language][]Rule
	generic []Rule
}

// New builds the catalog from the built-in rules plus any extra rules
// (typically loaded from a custom rules file). It fails with *Error if
// two rules share an ID or a rule has no usable matcher.
func New(extra ...Rule) (*Catalog, error) {
	c := &Catalog{byLang: make(map[lang.Language][]Rule)}

	seen := make(map[string]bool)
	add := func(r Rule) error {
		if r.ID == "" {
			return &Error{RuleID: r.ID, Err: fmt.Errorf("empty rule id")}
		}
		if seen[r.ID] {
			return &Error{RuleID: r.ID, Err: fmt.Errorf("duplicate rule id")}
		}
		if r.Pattern == nil && r.Match == nil {
			return &Error{RuleID: r.ID, Err: fmt.Errorf("rule has neither pattern nor match function")}
		}
		seen[r.ID] = true
		if r.Language == lang.Generic {
			c.generic = append(c.generic, r)
		} else {
			c.byLang[r.Language] = append(c.byLang[r.Language], r)
		}
		return nil
	}

	for _, r := range builtinRules() {
		if err := add(r); err != nil {
			return nil, err
		}
	}
	for _, r := range extra {
		if err := add(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RulesFor returns the ordered rule sequence for a language: the
// language-specific rules first, then the generic rules. TypeScript
// additionally inherits the JavaScript rules between its own and the
// generic set. Unknown gets only the generic rules.
func (c *Catalog) RulesFor(l lang.Language) []Rule {
	var rules []Rule
	rules = append(rules, c.byLang[l]...)
	if l == lang.TypeScript {
		rules = append(rules, c.byLang[lang.JavaScript]...)
	}
	rules = append(rules, c.generic...)
	return rules
}

// All returns every rule in catalog order, grouped by language with the
// generic rules last. Used by the rules listing command.
func (c *Catalog) All() []Rule {
	var rules []Rule
	for _, l := range []lang.Language{lang.Rust, lang.JavaScript, lang.TypeScript, lang.Python} {
		rules = append(rules, c.byLang[l]...)
	}
	return append(rules, c.generic...)
}

// Len returns the total number of rules.
func (c *Catalog) Len() int {
	n := len(c.generic)
	for _, rs := range c.byLang {
		n += len(rs)
	}
	return n
}
