// Package machine holds the simulation state: the currently installed
// mask and a sparse address-to-value memory.
package machine

import "maskvm/internal/mask"

// Machine is the state one simulation pass folds the program into.
// Each pass owns a fresh instance; the two masking semantics must
// never observe each other's writes.
type Machine struct {
	Mask   mask.Masked
	memory map[uint64]uint64
}

// New returns a machine with empty memory and a fully transparent
// mask installed.
func New() *Machine {
	return &Machine{
		Mask:   mask.Transparent(),
		memory: make(map[uint64]uint64),
	}
}

// Store inserts or overwrites the value at addr. The address space is
// unbounded; only written addresses occupy memory.
func (m *Machine) Store(addr, value uint64) {
	m.memory[addr] = value
}

// SumValues returns the sum of every value currently in memory.
func (m *Machine) SumValues() uint64 {
	var sum uint64
	for _, v := range m.memory {
		sum += v
	}
	return sum
}

// Len reports how many addresses hold a value.
func (m *Machine) Len() int {
	return len(m.memory)
}
