package vm

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
)

// Machine is the GritVM accumulator machine. All machine state is owned
// exclusively by the instance: the data memory, instruction store, and
// accumulator are mutated only by the machine itself while RUNNING, with
// the initial population during Load and the full wipe during Reset as
// the only exceptions.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Output  Sink     // Sink for OUTPUT instructions. A nil sink discards.
	Decoder *Decoder // Decoder for Load. A nil decoder uses a default.

	accumulator int
	memory      Memory
	program     Program
	cursor      int
	status      Status
	fault       error
}

// NewMachine creates a new machine in the WAITING status.
func NewMachine() (m *Machine) {
	m = &Machine{}
	m.Reset()

	return
}

// Status returns the current machine status.
func (m *Machine) Status() Status {
	return m.status
}

// Accumulator returns the current accumulator value.
func (m *Machine) Accumulator() int {
	return m.accumulator
}

// Fault returns the cause of the ERRORED status, or nil. The fault is
// diagnostic only; the authoritative outcome is the status itself.
func (m *Machine) Fault() error {
	return m.fault
}

// DataMemory returns a value-copy snapshot of the data memory, not a
// live view.
func (m *Machine) DataMemory() []int {
	return m.memory.Snapshot()
}

// Listing returns the loaded instruction sequence as program text lines.
func (m *Machine) Listing() (lines []string) {
	for _, inst := range m.program.All() {
		lines = append(lines, inst.String())
	}

	return
}

// Cursor returns the current instruction index.
func (m *Machine) Cursor() int {
	return m.cursor
}

// LineNo returns the source line number of the current instruction,
// or 0 when the cursor is outside the program.
func (m *Machine) LineNo() int {
	return m.program.LineNo(m.cursor)
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("Status: %v\n", m.status)
	text += fmt.Sprintf("Accumulator: %v\n", m.accumulator)

	text += "*** Data Memory ***\n"
	for n, value := range m.memory.Cells {
		text += fmt.Sprintf("Location %d: %v\n", n, value)
	}

	text += "*** Instruction Memory ***\n"
	for n, inst := range m.program.All() {
		text += fmt.Sprintf("Instruction %d: %v\n", n, inst)
	}

	return
}

// Reset unconditionally returns the machine to WAITING, with a zero
// accumulator and empty data and instruction memory.
func (m *Machine) Reset() (status Status) {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	m.accumulator = 0
	m.memory.Reset()
	m.program = Program{}
	m.cursor = 0
	m.fault = nil
	m.status = STATUS_WAITING

	return m.status
}

// Load decodes program text from the source and installs it together
// with the initial data memory contents.
//
// Load is legal only while WAITING; in any other status it returns the
// current status unchanged and mutates nothing. A decode failure leaves
// the machine ERRORED with the failure as its Fault. A failure to read
// the source at all is returned directly to the caller, distinct from
// the machine status, since no load attempt could even begin.
func (m *Machine) Load(source io.Reader, initial []int) (status Status, err error) {
	status = m.status
	if m.status != STATUS_WAITING {
		return
	}

	dec := m.Decoder
	if dec == nil {
		dec = &Decoder{}
	}

	prog, perr := dec.Parse(source)
	if perr != nil {
		syntax := (*ErrSyntax)(nil)
		if !errors.As(perr, &syntax) {
			// Source unreachable; no state was mutated.
			err = perr
			return
		}

		m.fail(perr)
		status = m.status
		return
	}

	status = m.install(prog, initial)
	return
}

// LoadProgram installs an already decoded instruction sequence together
// with the initial data memory contents. The same status rules as Load
// apply. The instruction sequence is copied; the caller retains no
// aliasing into the machine.
func (m *Machine) LoadProgram(prog *Program, initial []int) (status Status) {
	status = m.status
	if m.status != STATUS_WAITING {
		return
	}

	status = m.install(prog, initial)
	return
}

// install populates the machine state from a decoded program. An empty
// program leaves the machine WAITING.
func (m *Machine) install(prog *Program, initial []int) (status Status) {
	m.memory.Load(initial)
	m.program = Program{Instructions: slices.Clone(prog.Instructions)}
	m.cursor = 0

	if m.program.Len() != 0 {
		m.status = STATUS_READY
	}

	if m.Verbose {
		log.Printf("vm: loaded %v instructions, %v memory cells", m.program.Len(), m.memory.Size())
	}

	return m.status
}

// Start transitions a READY machine to RUNNING with the cursor at the
// first instruction, without executing anything. Drivers that interleave
// their own policy between instructions call Start and then Step.
func (m *Machine) Start() (status Status) {
	if m.status != STATUS_READY {
		return m.status
	}

	m.status = STATUS_RUNNING
	m.cursor = 0

	return m.status
}

// Run executes the loaded program until it halts or errors.
//
// Run is legal only while READY; in any other status it returns the
// current status unchanged. A program containing an unconditional
// backward jump loop runs indefinitely; bounding execution is an outer
// driver's policy, not the machine's.
func (m *Machine) Run() (status Status) {
	if m.Start() != STATUS_RUNNING {
		return m.status
	}

	for m.status == STATUS_RUNNING {
		m.Step()
	}

	return m.status
}

// Step evaluates the instruction at the cursor and, if the evaluation
// left the machine RUNNING, advances the cursor by the returned
// distance. Step does nothing unless the machine is RUNNING.
func (m *Machine) Step() (status Status) {
	if m.status != STATUS_RUNNING {
		return m.status
	}

	inst := m.program.Instructions[m.cursor]

	if m.Verbose {
		log.Printf("vm: %4d: %v", m.cursor, inst)
	}

	distance, err := m.evaluate(inst)
	if err != nil {
		m.fail(errors.Join(ErrOperation(inst), err))
		return m.status
	}

	if m.status == STATUS_RUNNING {
		m.advance(distance)
	}

	return m.status
}

// fail moves the machine to ERRORED, retaining the cause.
func (m *Machine) fail(err error) {
	m.status = STATUS_ERRORED
	m.fault = err

	if m.Verbose {
		log.Printf("vm: fault: %v", err)
	}
}

// advance moves the cursor by a signed relative distance, one step at a
// time. Passing the last instruction halts the machine regardless of
// remaining distance; reaching the first instruction clamps, leaving the
// cursor there. A zero distance is invalid.
func (m *Machine) advance(distance int) {
	if distance == 0 {
		m.fail(ErrJumpDistance)
		return
	}

	for distance > 0 && m.cursor < m.program.Len() {
		m.cursor++
		distance--
	}

	for distance < 0 && m.cursor > 0 {
		m.cursor--
		distance++
	}

	if m.cursor == m.program.Len() {
		m.status = STATUS_HALTED
	}
}
