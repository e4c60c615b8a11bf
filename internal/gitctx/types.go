package gitctx

import "github.com/tmorelli/nitpick/internal/lang"

// ChangeStatus describes where a file's difference lives.
type ChangeStatus string

const (
	// StatusCommitted marks changes that exist only in committed history
	// between the two refs.
	StatusCommitted ChangeStatus = "committed"
	// StatusStaged marks changes present in the index but not committed.
	StatusStaged ChangeStatus = "staged"
	// StatusModified marks unstaged working-tree changes.
	StatusModified ChangeStatus = "modified"
)

// FileChange is one changed file with the target-side line numbers that
// were added or altered relative to the source ref. Lines is non-empty
// and strictly increasing.
type FileChange struct {
	Path     string
	Status   ChangeStatus
	Lines    []int
	Language lang.Language
}

// SkippedFile records a file dropped from the analysis with the reason.
type SkippedFile struct {
	Path   string
	Reason string
}

// ChangeSet is the full set of file-level differences between two refs
// for one analysis run. It is built once per invocation and read-only
// afterward; Files is sorted by path.
type ChangeSet struct {
	SourceRef string
	TargetRef string
	Files     []FileChange
	Skipped   []SkippedFile
}
