// Package command models the initialization program: an ordered
// sequence of instructions, each either installing a new bitmask or
// assigning a value to a memory address.
package command

import (
	"fmt"

	"maskvm/internal/mask"
)

// Kind discriminates the two instruction shapes.
type Kind int

const (
	// SetMask replaces the machine's current mask.
	SetMask Kind = iota
	// Assign writes a value to a memory address.
	Assign
)

// Command is one parsed instruction. Mask is meaningful only for
// SetMask; Addr and Value only for Assign. Commands are immutable once
// parsed.
type Command struct {
	Kind  Kind
	Mask  mask.Masked
	Addr  uint64
	Value uint64
}

// String renders the canonical textual form of the instruction,
// matching the input grammar.
func (c Command) String() string {
	switch c.Kind {
	case SetMask:
		return fmt.Sprintf("mask = %s", c.Mask)
	case Assign:
		return fmt.Sprintf("mem[%d] = %d", c.Addr, c.Value)
	default:
		return fmt.Sprintf("<unknown command kind %d>", int(c.Kind))
	}
}
