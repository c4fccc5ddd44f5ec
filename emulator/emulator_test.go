package emulator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gritvm/gritvm/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(vm.STATUS_WAITING, emu.Machine.Status())
	assert.Equal(STEP_LIMIT_DEFAULT, emu.StepLimit)
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for attr, val := range emu.Defines() {
		defines[attr] = val
	}

	assert.Contains(defines, "STEP_LIMIT")
	assert.Contains(defines, "LINENO")
}

// doWriteProgram writes program lines to a file under the test tempdir.
func doWriteProgram(t *testing.T, program []string) (path string) {
	assert := assert.New(t)

	path = filepath.Join(t.TempDir(), "program.gvm")
	err := os.WriteFile(path, []byte(strings.Join(program, "\n")+"\n"), 0o644)
	assert.NoError(err)

	return
}

func TestEmulator_RunFile(t *testing.T) {
	assert := assert.New(t)

	path := doWriteProgram(t, []string{
		"AT 0",
		"ADDCONST 5",
		"OUTPUT",
		"HALT",
	})

	emu := NewEmulator()
	output := &bytes.Buffer{}
	emu.Tape.Output = output

	status, err := emu.LoadFile(path, []int{10})
	assert.NoError(err)
	assert.Equal(vm.STATUS_READY, status)

	status, err = emu.Run()
	assert.NoError(err)
	assert.Equal(vm.STATUS_HALTED, status)
	assert.Equal("15\n", output.String())
	assert.Equal(1, emu.Tape.Emitted())
}

func TestEmulator_LoadFileMissing(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// An unreachable source is the caller's error, not a machine status.
	status, err := emu.LoadFile(filepath.Join(t.TempDir(), "absent.gvm"), nil)
	assert.Error(err)
	assert.Equal(vm.STATUS_WAITING, status)
}

func TestEmulator_LoadFileDecodeFailure(t *testing.T) {
	assert := assert.New(t)

	path := doWriteProgram(t, []string{"FROB 1"})

	emu := NewEmulator()

	status, err := emu.LoadFile(path, nil)
	assert.NoError(err)
	assert.Equal(vm.STATUS_ERRORED, status)
	assert.ErrorIs(emu.Machine.Fault(), vm.ErrOperationInvalid)
}

func TestEmulator_RunFault(t *testing.T) {
	assert := assert.New(t)

	path := doWriteProgram(t, []string{
		"NOOP",
		"DIVCONST 0",
	})

	emu := NewEmulator()

	status, err := emu.LoadFile(path, nil)
	assert.NoError(err)
	assert.Equal(vm.STATUS_READY, status)

	status, err = emu.Run()
	assert.Equal(vm.STATUS_ERRORED, status)
	assert.ErrorIs(err, vm.ErrDivideByZero)

	runtime := (*ErrRuntime)(nil)
	assert.ErrorAs(err, &runtime)
	assert.Equal(2, runtime.LineNo)
}

func TestEmulator_StepLimit(t *testing.T) {
	assert := assert.New(t)

	path := doWriteProgram(t, []string{
		"loop: NOOP",
		"JUMPREL loop",
	})

	emu := NewEmulator()
	emu.StepLimit = 10

	status, err := emu.LoadFile(path, nil)
	assert.NoError(err)
	assert.Equal(vm.STATUS_READY, status)

	status, err = emu.Run()
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(vm.STATUS_RUNNING, status)

	// Only Reset recovers from an exhausted budget.
	assert.Equal(vm.STATUS_WAITING, emu.Machine.Reset())
}

func TestEmulator_RunWrongStatus(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	status, err := emu.Run()
	assert.NoError(err)
	assert.Equal(vm.STATUS_WAITING, status)
}
