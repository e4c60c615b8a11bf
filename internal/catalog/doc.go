// Package catalog holds the immutable collection of detection rules the
// analyzer applies to changed lines.
//
// The catalog is constructed once at process start and never mutated.
// [Catalog.RulesFor] returns the language-specific rules followed by the
// generic rules in a fixed order; that order is the presentation
// tie-break when several rules fire on the same line; every matching
// rule still produces its own finding. TypeScript is
// treated as a superset of JavaScript: its sequence is the TypeScript
// rules, then the JavaScript rules, then the generic rules.
//
// Construction fails fast on a duplicate rule ID or an invalid pattern
// so an inconsistent catalog can never bias a run.
package catalog
