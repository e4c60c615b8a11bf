package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownWriter_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## nitpick review `main..HEAD`") {
		t.Error("Output should have a heading with the refs")
	}
	if !strings.Contains(out, "| Severity | Count |") {
		t.Error("Output should have a severity table")
	}
	if !strings.Contains(out, "| Critical | 1 |") {
		t.Error("Output should count critical findings")
	}
	if !strings.Contains(out, "<details>") {
		t.Error("Output should use collapsible sections")
	}
	if !strings.Contains(out, "**`src/db.js:42`**") {
		t.Error("Output should show file:line in bold code")
	}
	if !strings.Contains(out, "_(OWASP A03)_") {
		t.Error("Output should show OWASP tag")
	}
	if !strings.Contains(out, "> Use parameterized queries") {
		t.Error("Output should quote the suggestion")
	}
	if !strings.Contains(out, "```\ndb.query(") {
		t.Error("Output should fence the snippet")
	}
}

func TestMarkdownWriter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, emptyReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No issues found") {
		t.Error("Output should say no issues found")
	}
	if strings.Contains(out, "<details>") {
		t.Error("Output should have no sections when there are no findings")
	}
}
