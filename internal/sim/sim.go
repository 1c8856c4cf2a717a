// Package sim runs the two simulation passes over a parsed program.
// Each pass is a deterministic fold of the command sequence against a
// freshly constructed machine.
package sim

import (
	"maskvm/internal/command"
	"maskvm/internal/machine"
)

// SumValueMasked runs the value-masking pass: the current mask
// rewrites each written value, addresses stay literal. Returns the sum
// of memory after the final command.
func SumValueMasked(program []command.Command) uint64 {
	m := machine.New()
	for _, cmd := range program {
		switch cmd.Kind {
		case command.SetMask:
			m.Mask = cmd.Mask
		case command.Assign:
			m.Store(cmd.Addr, m.Mask.ApplyToValue(cmd.Value))
		}
	}
	return m.SumValues()
}

// SumAddressFloated runs the address-floating pass: the current mask
// rewrites each address into its full floating expansion, values stay
// literal. Returns the sum of memory after the final command.
func SumAddressFloated(program []command.Command) uint64 {
	m := machine.New()
	for _, cmd := range program {
		switch cmd.Kind {
		case command.SetMask:
			m.Mask = cmd.Mask
		case command.Assign:
			for _, addr := range m.Mask.ExpandAddresses(cmd.Addr) {
				m.Store(addr, cmd.Value)
			}
		}
	}
	return m.SumValues()
}
