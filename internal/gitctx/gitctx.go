package gitctx

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmorelli/nitpick/internal/lang"
)

// Repo provides access to a git repository through the git binary.
type Repo struct {
	root string
	run  func(dir string, args ...string) (string, error)
}

// Open verifies dir is inside a git repository and returns a Repo rooted
// at its top level.
func Open(dir string) (*Repo, error) {
	out, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, &RepositoryError{Err: fmt.Errorf("not a git repository: %w", err)}
	}
	return &Repo{root: strings.TrimSpace(out), run: gitOutput}, nil
}

// Root returns the repository's top-level directory.
func (r *Repo) Root() string { return r.root }

// ResolveRef resolves a ref name to a full commit SHA.
func (r *Repo) ResolveRef(ref string) (string, error) {
	out, err := r.run(r.root, "rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", &RepositoryError{Ref: ref, Err: err}
	}
	return strings.TrimSpace(out), nil
}

// nameStatusEntry is one line of `git diff --name-status` output.
type nameStatusEntry struct {
	path   string
	status ChangeStatus
}

// nameStatus runs `git diff --name-status` with the given selector
// arguments and returns the touched paths. Deletions are dropped: a
// deleted file has no target lines to analyze. Renames and copies report
// the new path.
func (r *Repo) nameStatus(status ChangeStatus, selector ...string) ([]nameStatusEntry, error) {
	args := append([]string{"diff", "--name-status"}, selector...)
	out, err := r.run(r.root, args...)
	if err != nil {
		return nil, &RepositoryError{Err: fmt.Errorf("git %s: %w", strings.Join(args, " "), err)}
	}

	var entries []nameStatusEntry
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 || strings.HasPrefix(fields[0], "D") {
			continue
		}
		// R100/C75 entries carry old and new paths; the new path is last.
		entries = append(entries, nameStatusEntry{
			path:   fields[len(fields)-1],
			status: status,
		})
	}
	return entries, nil
}

// ReadBlob returns the target-side content of path for the given change
// status: the working tree for modified files, the index for staged
// files, and the target ref's tree for committed ones.
func (r *Repo) ReadBlob(path string, status ChangeStatus, targetRef string) (string, error) {
	switch status {
	case StatusModified:
		data, err := os.ReadFile(filepath.Join(r.root, path))
		if err != nil {
			return "", &BlobError{Path: path, Err: err}
		}
		return string(data), nil
	case StatusStaged:
		out, err := r.run(r.root, "show", ":0:"+path)
		if err != nil {
			return "", &BlobError{Path: path, Err: err}
		}
		return out, nil
	default:
		out, err := r.run(r.root, "show", targetRef+":"+path)
		if err != nil {
			return "", &BlobError{Path: path, Err: err}
		}
		return out, nil
	}
}

// sourceBlob returns path's content at the source ref, or "" when the
// file does not exist there (an added file diffs against empty).
func (r *Repo) sourceBlob(path, sourceRef string) string {
	out, err := r.run(r.root, "show", sourceRef+":"+path)
	if err != nil {
		return ""
	}
	return out
}

// BlobReader binds a Repo to a target ref for content reads during
// analysis.
type BlobReader struct {
	repo      *Repo
	targetRef string
}

// Reader returns a BlobReader for the given target ref.
func (r *Repo) Reader(targetRef string) *BlobReader {
	return &BlobReader{repo: r, targetRef: targetRef}
}

// ReadBlob reads the target-side content of one changed file.
func (b *BlobReader) ReadBlob(path string, status ChangeStatus) (string, error) {
	return b.repo.ReadBlob(path, status, b.targetRef)
}

// LocateOptions controls change discovery.
type LocateOptions struct {
	SourceRef string
	TargetRef string
	Include   []string
	Exclude   []string
}

// Locator discovers changed files and their changed line numbers.
type Locator struct {
	Repo   *Repo
	Differ Differ
}

// Locate builds the ChangeSet between the two refs, folding in staged
// and unstaged work with status precedence Modified > Staged >
// Committed. Files are filtered by the include/exclude globs, binary
// files and files with no net line changes are dropped, and the result
// is sorted by path so identical comparisons produce identical reports.
//
// Ref resolution failures are fatal. A file whose blob cannot be read is
// skipped and recorded in ChangeSet.Skipped.
func (l *Locator) Locate(opts LocateOptions) (*ChangeSet, error) {
	if _, err := l.Repo.ResolveRef(opts.SourceRef); err != nil {
		return nil, err
	}
	if _, err := l.Repo.ResolveRef(opts.TargetRef); err != nil {
		return nil, err
	}

	// Gather candidates in ascending precedence so later states
	// overwrite earlier ones.
	statuses := make(map[string]ChangeStatus)
	committed, err := l.Repo.nameStatus(StatusCommitted, opts.SourceRef, opts.TargetRef)
	if err != nil {
		return nil, err
	}
	staged, err := l.Repo.nameStatus(StatusStaged, "--cached")
	if err != nil {
		return nil, err
	}
	unstaged, err := l.Repo.nameStatus(StatusModified)
	if err != nil {
		return nil, err
	}
	for _, group := range [][]nameStatusEntry{committed, staged, unstaged} {
		for _, e := range group {
			statuses[e.path] = e.status
		}
	}

	filter := Filter{Include: opts.Include, Exclude: opts.Exclude}
	paths := make([]string, 0, len(statuses))
	for p := range statuses {
		if filter.Keep(p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	cs := &ChangeSet{SourceRef: opts.SourceRef, TargetRef: opts.TargetRef}
	for _, path := range paths {
		status := statuses[path]
		target, err := l.Repo.ReadBlob(path, status, opts.TargetRef)
		if err != nil {
			cs.Skipped = append(cs.Skipped, SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		if isBinary(target) {
			continue
		}
		source := l.Repo.sourceBlob(path, opts.SourceRef)

		lines, err := l.Differ.DiffLines(source, target)
		if err != nil {
			cs.Skipped = append(cs.Skipped, SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		if len(lines) == 0 {
			continue
		}
		cs.Files = append(cs.Files, FileChange{
			Path:     path,
			Status:   status,
			Lines:    lines,
			Language: lang.Classify(path),
		})
	}
	return cs, nil
}

// isBinary uses the same heuristic git does: a NUL byte in the first 8KB.
func isBinary(content string) bool {
	probe := content
	if len(probe) > 8192 {
		probe = probe[:8192]
	}
	return strings.ContainsRune(probe, '\x00')
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
