package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Read parses newline-separated instructions from r, preserving input
// order. It stops at the first malformed line and returns a
// *ParseError carrying its 1-based line number.
func Read(r io.Reader) ([]Command, error) {
	var program []Command
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, err := ParseLine(scanner.Text())
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = lineNo
			}
			return nil, err
		}
		program = append(program, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return program, nil
}

// Load reads and parses the instruction file at path. I/O failures are
// returned wrapped and remain distinguishable from parse failures.
func Load(path string) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	program, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return program, nil
}
