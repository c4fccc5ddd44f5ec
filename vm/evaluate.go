package vm

// evaluate executes a single instruction against the machine state and
// returns the signed relative distance to advance the cursor. Every
// operation performs its validity check before mutating, so an error
// leaves the accumulator and memory exactly as they were.
func (m *Machine) evaluate(inst Instruction) (distance int, err error) {
	distance = 1

	switch inst.Operation {
	case OP_NOOP:
		// pass
	case OP_HALT:
		m.status = STATUS_HALTED
	case OP_OUTPUT:
		err = m.emit(m.accumulator)
	case OP_CLEAR:
		m.accumulator = 0
	case OP_AT:
		var value int
		value, err = m.memory.At(inst.Argument)
		if err == nil {
			m.accumulator = value
		}
	case OP_SET:
		err = m.memory.Set(inst.Argument, m.accumulator)
	case OP_INSERT:
		err = m.memory.Insert(inst.Argument, m.accumulator)
	case OP_ERASE:
		err = m.memory.Erase(inst.Argument)
	case OP_ADDCONST, OP_SUBCONST, OP_MULCONST, OP_DIVCONST:
		err = m.constOperation(inst.Operation, inst.Argument)
	case OP_ADDMEM, OP_SUBMEM, OP_MULMEM, OP_DIVMEM:
		err = m.memOperation(inst.Operation, inst.Argument)
	case OP_JUMPREL, OP_JUMPZERO, OP_JUMPNZERO:
		distance, err = m.jumpOperation(inst.Operation, inst.Argument)
	case OP_CHECKMEM:
		// Inclusive boundary: a memory of exactly the checked size passes.
		if m.memory.Size() < inst.Argument {
			err = ErrMemoryTooSmall
		}
	default:
		err = ErrOperationUnknown
	}

	return
}

// emit sends the value to the output sink, in execution order.
func (m *Machine) emit(value int) (err error) {
	if m.Output == nil {
		return
	}

	return m.Output.Emit(value)
}

// constOperation applies an arithmetic operation with a constant
// operand to the accumulator. Arithmetic is signed, native-width,
// wraparound. A zero divisor leaves the accumulator unmodified.
func (m *Machine) constOperation(op Operation, constant int) (err error) {
	switch op {
	case OP_ADDCONST:
		m.accumulator += constant
	case OP_SUBCONST:
		m.accumulator -= constant
	case OP_MULCONST:
		m.accumulator *= constant
	case OP_DIVCONST:
		if constant == 0 {
			err = ErrDivideByZero
			return
		}
		m.accumulator /= constant
	}

	return
}

// memOperation applies an arithmetic operation with a memory cell as
// the operand. The location must be valid; a zero cell divisor leaves
// the accumulator unmodified.
func (m *Machine) memOperation(op Operation, location int) (err error) {
	operand, err := m.memory.At(location)
	if err != nil {
		return
	}

	switch op {
	case OP_ADDMEM:
		m.accumulator += operand
	case OP_SUBMEM:
		m.accumulator -= operand
	case OP_MULMEM:
		m.accumulator *= operand
	case OP_DIVMEM:
		if operand == 0 {
			err = ErrDivideByZero
			return
		}
		m.accumulator /= operand
	}

	return
}

// jumpOperation returns the cursor distance requested by a jump.
// Conditional jumps fall through with distance 1 when their condition
// does not hold. A zero distance is invalid for every jump.
func (m *Machine) jumpOperation(op Operation, distance int) (jump int, err error) {
	jump = 1

	if distance == 0 {
		err = ErrJumpDistance
		return
	}

	switch op {
	case OP_JUMPREL:
		jump = distance
	case OP_JUMPZERO:
		if m.accumulator == 0 {
			jump = distance
		}
	case OP_JUMPNZERO:
		if m.accumulator != 0 {
			jump = distance
		}
	}

	return
}
