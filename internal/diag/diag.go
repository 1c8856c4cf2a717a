// Package diag collects and renders diagnostics in either a
// human-readable or a machine-readable form.
package diag

import (
	"encoding/json"
	"fmt"
	"io"
)

// FormatText and FormatJSON are the supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reporter writes diagnostics to a sink and remembers whether any
// errors were reported.
type Reporter struct {
	w      io.Writer
	format string
	errs   int
}

// NewReporter returns a reporter writing to w. Unknown formats fall
// back to text.
func NewReporter(w io.Writer, format string) *Reporter {
	if format != FormatJSON {
		format = FormatText
	}
	return &Reporter{w: w, format: format}
}

type record struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Errorf reports one error diagnostic.
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.errs++
	msg := fmt.Sprintf(format, args...)
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.w)
		_ = enc.Encode(record{Severity: "error", Message: msg})
		return
	}
	fmt.Fprintf(r.w, "error: %s\n", msg)
}

// HasErrors reports whether any error diagnostic was emitted.
func (r *Reporter) HasErrors() bool { return r.errs > 0 }

// Count returns the number of error diagnostics emitted.
func (r *Reporter) Count() int { return r.errs }
