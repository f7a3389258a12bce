package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRenderer_UnknownModeFallsBackToText(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, Mode("csv"))
	if r.Mode() != ModeText {
		t.Errorf("Mode() = %q", r.Mode())
	}
	if r.IsJSON() {
		t.Error("text renderer must not report JSON")
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &bytes.Buffer{}, ModeJSON)

	if !r.IsJSON() {
		t.Fatal("expected JSON mode")
	}
	if err := r.JSON(map[string]int{"count": 3}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["count"] != 3 {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestRenderer_MarkdownTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &bytes.Buffer{}, ModeMarkdown)

	r.Table([]string{"ID", "Name"}, [][]string{{"I1", "John"}})
	out := buf.String()
	if !strings.Contains(out, "| I1 |") {
		t.Errorf("markdown table missing row: %q", out)
	}

	buf.Reset()
	r.Header("Findings")
	if !strings.HasPrefix(buf.String(), "## Findings") {
		t.Errorf("markdown header = %q", buf.String())
	}
}

func TestRenderer_SeverityUnstyledOutsideText(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeMarkdown)
	if got := r.Severity("error"); got != "error" {
		t.Errorf("markdown severity should be plain, got %q", got)
	}
}
