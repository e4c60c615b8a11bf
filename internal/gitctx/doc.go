// Package gitctx locates changed files and line ranges in a git repository.
//
// It shells out to git to list files touched between two refs (plus the
// index and working tree), reads blob contents for the relevant version of
// each file, and computes changed target line numbers through a pluggable
// [Differ]. The result is an immutable [ChangeSet] consumed by the review
// engine.
//
// When a file appears in more than one state at once, status precedence is
// Modified > Staged > Committed: an unstaged edit wins over a staged one,
// which wins over committed history.
package gitctx
