package vm

import (
	"iter"
)

// Program is the machine's instruction store: an ordered sequence of
// decoded instructions, immutable once installed.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// All iterates the instructions in program order with their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(index int, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(n, inst) {
				return
			}
		}
	}
}

// LineNo returns the source line of the instruction at the index,
// or 0 when the index is outside the program.
func (prog *Program) LineNo(index int) (lineno int) {
	if index >= 0 && index < len(prog.Instructions) {
		lineno = prog.Instructions[index].LineNo
	}

	return
}
