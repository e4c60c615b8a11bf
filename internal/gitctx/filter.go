package gitctx

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds include/exclude glob patterns with `**` semantics. A path
// is kept iff it matches at least one include pattern (when any are
// given) and matches no exclude pattern.
type Filter struct {
	Include []string
	Exclude []string
}

// Keep reports whether path passes the filter.
func (f Filter) Keep(path string) bool {
	path = filepath.ToSlash(path)
	if len(f.Include) > 0 && !matchesAny(path, f.Include) {
		return false
	}
	return !matchesAny(path, f.Exclude)
}

func matchesAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
