// Package emulator wires the GritVM machine to the outside world: file
// loading, an output tape, a step budget, and source line attribution
// for runtime faults.
package emulator

import (
	"fmt"
	"iter"
	"maps"
	"os"

	"github.com/gritvm/gritvm/internal"
	"github.com/gritvm/gritvm/io"
	"github.com/gritvm/gritvm/vm"
)

const (
	// STEP_LIMIT_DEFAULT bounds a single Run. The machine itself runs an
	// unconditional backward jump loop indefinitely; the budget is the
	// emulator's safety policy, not part of the machine contract.
	STEP_LIMIT_DEFAULT = 1 << 20
)

var _emulator_defines = map[string]string{
	"STEP_LIMIT": fmt.Sprintf("%v", STEP_LIMIT_DEFAULT),
}

// Emulator state. Machine + decoder + output tape.
type Emulator struct {
	Verbose     bool // If set, enables verbose logging.
	*vm.Machine      // Reference to the machine simulation.

	Decoder vm.Decoder // Decoder for program text.
	Tape    io.Tape    // Output tape for OUTPUT instructions.

	StepLimit int // Maximum steps for a single Run. Zero is unbounded.
}

// NewEmulator creates a new emulator writing its tape to stdout.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine:   vm.NewMachine(),
		StepLimit: STEP_LIMIT_DEFAULT,
	}

	emu.Tape.Output = os.Stdout
	emu.Machine.Output = &emu.Tape
	emu.Machine.Decoder = &emu.Decoder

	for attr, val := range _emulator_defines {
		emu.Decoder.Predefine(attr, val)
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Decoder.Defines(),
	)
}

// LoadFile loads a GVM program from a file together with the initial
// data memory. A file that cannot be opened or read is reported directly
// to the caller, distinct from the machine status, since no load attempt
// could even begin.
func (emu *Emulator) LoadFile(path string, initial []int) (status vm.Status, err error) {
	emu.Decoder.Verbose = emu.Verbose
	emu.Machine.Verbose = emu.Verbose

	file, err := os.Open(path)
	if err != nil {
		status = emu.Machine.Status()
		return
	}
	defer file.Close()

	return emu.Machine.Load(file, initial)
}

// Run drives a READY machine to completion, bounded by StepLimit.
// A runtime fault is reported as an ErrRuntime naming the source line of
// the faulting instruction. On ErrStepLimit the machine is left RUNNING;
// only Reset recovers it.
func (emu *Emulator) Run() (status vm.Status, err error) {
	emu.Machine.Verbose = emu.Verbose

	status = emu.Machine.Start()
	if status != vm.STATUS_RUNNING {
		return
	}

	var steps int
	for status == vm.STATUS_RUNNING {
		if emu.StepLimit != 0 && steps >= emu.StepLimit {
			err = &ErrRuntime{LineNo: emu.Machine.LineNo(), Err: ErrStepLimit}
			return
		}

		lineno := emu.Machine.LineNo()
		status = emu.Machine.Step()
		steps++

		if status == vm.STATUS_ERRORED {
			err = &ErrRuntime{LineNo: lineno, Err: emu.Machine.Fault()}
		}
	}

	return
}
