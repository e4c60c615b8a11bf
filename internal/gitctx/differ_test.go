package gitctx

import (
	"testing"

	"github.com/sourcegraph/go-diff/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDiff(t *testing.T, raw string) *diff.FileDiff {
	t.Helper()
	fd, err := diff.ParseFileDiff([]byte(raw))
	require.NoError(t, err)
	return fd
}

func TestChangedTargetLines(t *testing.T) {
	raw := `--- a/file.txt
+++ b/file.txt
@@ -2,1 +2,2 @@
-old line
+new line
+inserted line
@@ -10,0 +11,1 @@
+appended line
`
	fd := parseDiff(t, raw)
	assert.Equal(t, []int{2, 3, 11}, changedTargetLines(fd))
}

func TestChangedTargetLinesContext(t *testing.T) {
	// Context lines advance the target counter without being reported.
	raw := `--- a/file.txt
+++ b/file.txt
@@ -1,3 +1,4 @@
 first
+second
 third
 fourth
`
	fd := parseDiff(t, raw)
	assert.Equal(t, []int{2}, changedTargetLines(fd))
}

func TestChangedTargetLinesDeletionOnly(t *testing.T) {
	raw := `--- a/file.txt
+++ b/file.txt
@@ -3,2 +2,0 @@
-gone
-also gone
`
	fd := parseDiff(t, raw)
	assert.Empty(t, changedTargetLines(fd))
}

func TestGitDifferIdenticalInput(t *testing.T) {
	lines, err := GitDiffer{}.DiffLines("same\n", "same\n")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFilterKeep(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		path    string
		want    bool
	}{
		{"no patterns keeps all", Filter{}, "src/main.rs", true},
		{"include match", Filter{Include: []string{"src/**"}}, "src/a/b.rs", true},
		{"include miss", Filter{Include: []string{"src/**"}}, "docs/a.md", false},
		{"exclude match", Filter{Exclude: []string{"test_files/**"}}, "test_files/x.py", false},
		{"exclude miss", Filter{Exclude: []string{"test_files/**"}}, "src/x.py", true},
		{"exclude wins over include", Filter{Include: []string{"**/*.js"}, Exclude: []string{"vendor/**"}}, "vendor/lib.js", false},
		{"extension glob", Filter{Include: []string{"**/*.py"}}, "deep/nested/mod.py", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Keep(tt.path))
		})
	}
}
