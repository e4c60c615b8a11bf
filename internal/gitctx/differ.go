package gitctx

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// Differ computes the line numbers in the target text that were added or
// altered relative to the source text. Implementations must be
// deterministic and safe for concurrent use.
type Differ interface {
	DiffLines(source, target string) ([]int, error)
}

// GitDiffer computes line-level changes by shelling out to
// `git diff --no-index -U0` over temporary files and parsing the
// resulting unified diff. The -U0 context setting means every hunk body
// line is an addition or removal, so changed target lines can be read
// straight off the hunk headers.
type GitDiffer struct{}

// DiffLines implements Differ.
func (GitDiffer) DiffLines(source, target string) ([]int, error) {
	if source == target {
		return nil, nil
	}

	tmpDir, err := os.MkdirTemp("", "nitpick-diff-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	aPath := filepath.Join(tmpDir, "a")
	bPath := filepath.Join(tmpDir, "b")
	if err := os.WriteFile(aPath, []byte(source), 0o600); err != nil {
		return nil, err
	}
	if err := os.WriteFile(bPath, []byte(target), 0o600); err != nil {
		return nil, err
	}

	// git diff --no-index exits 1 when the files differ; only treat the
	// run as failed when no output came back.
	cmd := exec.Command("git", "diff", "--no-index", "-U0", aPath, bPath)
	out, err := cmd.Output()
	if err != nil && len(out) == 0 {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("git diff --no-index: %w", err)
		}
	}
	if strings.TrimSpace(string(out)) == "" {
		return nil, nil
	}

	fd, err := diff.ParseFileDiff(out)
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}
	return changedTargetLines(fd), nil
}

// changedTargetLines extracts, from a parsed unified diff, the ordered
// target-side line numbers carrying added or altered content. Context
// lines inside hunks advance the counter without being reported.
func changedTargetLines(fd *diff.FileDiff) []int {
	var lines []int
	for _, h := range fd.Hunks {
		n := int(h.NewStartLine)
		for _, body := range strings.Split(strings.TrimSuffix(string(h.Body), "\n"), "\n") {
			if body == "" {
				continue
			}
			switch body[0] {
			case '+':
				lines = append(lines, n)
				n++
			case ' ':
				n++
			}
			// '-' lines belong to the source side only.
		}
	}
	return lines
}
