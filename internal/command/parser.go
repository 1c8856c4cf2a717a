package command

import (
	"fmt"
	"regexp"
	"strconv"

	"maskvm/internal/mask"
)

// The two line grammars. A line must fully match exactly one of them;
// there are no partial parses.
var (
	setMaskRe = regexp.MustCompile(`^mask = ([10X]{36})$`)
	assignRe  = regexp.MustCompile(`^mem\[([0-9]+)\] = ([0-9]+)$`)
)

// ParseError reports a line that matches neither grammar or carries a
// malformed field. Line is 1-based; zero when the position is unknown.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("cannot parse %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine parses one input line into a Command. Lines are parsed
// independently; ordering is the caller's concern.
func ParseLine(line string) (Command, error) {
	if m := setMaskRe.FindStringSubmatch(line); m != nil {
		parsed, err := mask.Parse(m[1])
		if err != nil {
			return Command{}, &ParseError{Text: line, Err: err}
		}
		return Command{Kind: SetMask, Mask: parsed}, nil
	}
	if m := assignRe.FindStringSubmatch(line); m != nil {
		addr, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return Command{}, &ParseError{Text: line, Err: fmt.Errorf("address: %w", err)}
		}
		value, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return Command{}, &ParseError{Text: line, Err: fmt.Errorf("value: %w", err)}
		}
		return Command{Kind: Assign, Addr: addr, Value: value}, nil
	}
	return Command{}, &ParseError{Text: line, Err: fmt.Errorf("line matches no known grammar")}
}
