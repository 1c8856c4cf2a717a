package diag

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)
	if r.HasErrors() {
		t.Fatal("fresh reporter has errors")
	}
	r.Errorf("line %d: bad %s", 3, "mask")
	if got, want := buf.String(), "error: line 3: bad mask\n"; got != want {
		t.Fatalf("text output = %q, want %q", got, want)
	}
	if !r.HasErrors() || r.Count() != 1 {
		t.Fatalf("HasErrors=%v Count=%d, want true/1", r.HasErrors(), r.Count())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON)
	r.Errorf("bad line")
	r.Errorf("another")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSON records, got %d: %q", len(lines), buf.String())
	}
	var rec struct {
		Severity string `json:"severity"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal first record: %v", err)
	}
	if rec.Severity != "error" || rec.Message != "bad line" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if r.Count() != 2 {
		t.Fatalf("Count = %d, want 2", r.Count())
	}
}

func TestUnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, "yaml")
	r.Errorf("oops")
	if !strings.HasPrefix(buf.String(), "error: ") {
		t.Fatalf("expected text fallback, got %q", buf.String())
	}
}
