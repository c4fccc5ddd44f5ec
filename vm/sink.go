package vm

import (
	"github.com/gritvm/gritvm/io"
)

// Sink is an output sink interface for the OUTPUT instruction.
type Sink io.Sink
