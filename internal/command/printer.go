package command

import (
	"fmt"
	"io"
)

// Dump writes the canonical textual form of the program, one
// instruction per line. Dumping a freshly parsed program reproduces
// the input byte for byte.
func Dump(program []Command, w io.Writer) {
	for _, cmd := range program {
		fmt.Fprintln(w, cmd)
	}
}
