// Package mask implements the 36-bit bitmask descriptor used by the
// initialization program: a template over {0,1,X} where a position is
// forced to one, forced to zero, or left floating.
package mask

import (
	"fmt"
	"math/bits"
	"strings"
)

// Width is the number of bit positions a mask covers. Bit Width-1
// corresponds to the leftmost character of the textual form, bit 0 to
// the rightmost.
const Width = 36

// low36 keeps only the bits a mask can describe.
const low36 = (uint64(1) << Width) - 1

// Masked is a parsed mask. Floating has a bit set per 'X' position,
// Ones a bit set per '1' position. The two fields are always disjoint
// because each position carries exactly one symbol.
type Masked struct {
	Floating uint64
	Ones     uint64
}

// Transparent returns the mask a machine starts with: every position
// floating, nothing forced. Applying it to a value is the identity.
func Transparent() Masked {
	return Masked{Floating: low36}
}

// Parse decodes the 36-character textual form. The string must be
// exactly Width characters over {0,1,X}.
func Parse(s string) (Masked, error) {
	if len(s) != Width {
		return Masked{}, fmt.Errorf("mask must be %d characters, got %d", Width, len(s))
	}
	var m Masked
	for i := 0; i < Width; i++ {
		bit := uint64(1) << (Width - 1 - i)
		switch s[i] {
		case '1':
			m.Ones |= bit
		case 'X':
			m.Floating |= bit
		case '0':
		default:
			return Masked{}, fmt.Errorf("invalid character %q in mask", s[i])
		}
	}
	return m, nil
}

// String renders the canonical textual form. Parse and String round
// trip: String(Parse(s)) == s for every valid s.
func (m Masked) String() string {
	var b strings.Builder
	b.Grow(Width)
	for i := Width - 1; i >= 0; i-- {
		bit := uint64(1) << i
		switch {
		case m.Floating&bit != 0:
			b.WriteByte('X')
		case m.Ones&bit != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ApplyToValue rewrites a value under value-masking semantics: '1'
// positions become 1, '0' positions become 0, 'X' positions keep the
// raw bit.
func (m Masked) ApplyToValue(raw uint64) uint64 {
	notZeros := m.Floating | m.Ones
	return raw&notZeros | m.Ones
}

// FloatingCount reports how many positions float. The address
// expansion for a mask produces exactly 1<<FloatingCount addresses.
func (m Masked) FloatingCount() int {
	return bits.OnesCount64(m.Floating)
}

// ExpandAddresses applies address-floating semantics to addr: forced
// ones are OR'd in, then every floating bit takes both values,
// doubling the working set once per floating bit. The result holds
// 2^FloatingCount distinct addresses; all non-floating positions agree
// with addr|Ones.
func (m Masked) ExpandAddresses(addr uint64) []uint64 {
	base := addr | m.Ones
	result := make([]uint64, 1, 1<<m.FloatingCount())
	result[0] = base
	for i := 0; i < Width; i++ {
		bit := uint64(1) << i
		if m.Floating&bit == 0 {
			continue
		}
		doubled := make([]uint64, 0, 2*len(result))
		for _, a := range result {
			doubled = append(doubled, a|bit, a&^bit)
		}
		result = doubled
	}
	return result
}
