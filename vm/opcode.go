package vm

import (
	"fmt"
)

// Operation is an instruction operation tag.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_CLEAR     = Operation(0)  // CLEAR
	OP_AT        = Operation(1)  // AT
	OP_SET       = Operation(2)  // SET
	OP_INSERT    = Operation(3)  // INSERT
	OP_ERASE     = Operation(4)  // ERASE
	OP_ADDCONST  = Operation(5)  // ADDCONST
	OP_SUBCONST  = Operation(6)  // SUBCONST
	OP_MULCONST  = Operation(7)  // MULCONST
	OP_DIVCONST  = Operation(8)  // DIVCONST
	OP_ADDMEM    = Operation(9)  // ADDMEM
	OP_SUBMEM    = Operation(10) // SUBMEM
	OP_MULMEM    = Operation(11) // MULMEM
	OP_DIVMEM    = Operation(12) // DIVMEM
	OP_JUMPREL   = Operation(13) // JUMPREL
	OP_JUMPZERO  = Operation(14) // JUMPZERO
	OP_JUMPNZERO = Operation(15) // JUMPNZERO
	OP_NOOP      = Operation(16) // NOOP
	OP_HALT      = Operation(17) // HALT
	OP_OUTPUT    = Operation(18) // OUTPUT
	OP_CHECKMEM  = Operation(19) // CHECKMEM
)

// HasArgument returns true if the operation carries an argument.
// The argument is a memory location, a constant, or a jump distance,
// depending on the operation.
func (op Operation) HasArgument() bool {
	switch op {
	case OP_CLEAR, OP_NOOP, OP_HALT, OP_OUTPUT:
		return false
	}

	return true
}

// Jump returns true if the operation's argument is a jump distance.
func (op Operation) Jump() bool {
	switch op {
	case OP_JUMPREL, OP_JUMPZERO, OP_JUMPNZERO:
		return true
	}

	return false
}

// Instruction is a decoded operation and its argument.
// Instructions are immutable once decoded.
type Instruction struct {
	Operation Operation
	Argument  int
	LineNo    int // Source line the instruction was decoded from.
}

// String returns the program text representation of the instruction.
func (inst Instruction) String() (out string) {
	out = inst.Operation.String()
	if inst.Operation.HasArgument() {
		out = fmt.Sprintf("%v %v", out, inst.Argument)
	}

	return
}
