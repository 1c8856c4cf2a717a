package command

import (
	"bufio"
	"fmt"
	"io"

	"maskvm/internal/diag"
)

// Check parses every line of r, reporting each malformed one through
// the reporter instead of stopping at the first. It returns an error
// when any line failed, so callers can exit non-zero after seeing the
// full list of diagnostics.
func Check(r io.Reader, reporter *diag.Reporter) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if _, err := ParseLine(scanner.Text()); err != nil {
			reporter.Errorf("line %d: cannot parse %q", lineNo, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if reporter.HasErrors() {
		return fmt.Errorf("input has %d invalid lines", reporter.Count())
	}
	return nil
}
