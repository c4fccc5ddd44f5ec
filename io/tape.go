package io

import (
	"fmt"
	"io"
)

// Tape provides sequential output for emitted machine values.
// It wraps an io.Writer, rendering each value as a decimal number on
// its own line, the console behavior of the OUTPUT instruction.
type Tape struct {
	Output io.Writer

	emitted int
}

var _ Sink = (*Tape)(nil)

// Rewind is not possible on a tape; only the emit counter restarts.
func (tc *Tape) Rewind() {
	tc.emitted = 0
}

// Emit writes a value to the output stream as a decimal text line.
func (tc *Tape) Emit(value int) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.emitted++
	return
}

// Emitted returns the number of values emitted since the last Rewind.
func (tc *Tape) Emitted() int {
	return tc.emitted
}
