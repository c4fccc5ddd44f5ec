package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gritvm/gritvm/emulator"
	"github.com/gritvm/gritvm/vm"
)

// parseMemory parses a comma separated list of initial memory cells.
func parseMemory(text string) (memory []int, err error) {
	if len(text) == 0 {
		return
	}

	for _, word := range strings.Split(text, ",") {
		var value int64
		value, err = strconv.ParseInt(strings.TrimSpace(word), 0, 64)
		if err != nil {
			return
		}
		memory = append(memory, int(value))
	}

	return
}

func main() {
	var memory string
	var output string
	var steps int
	var verbose bool
	var print bool

	flag.StringVar(&memory, "m", "", "Initial data memory, comma separated")
	flag.StringVar(&output, "o", "-", "Output tape")
	flag.IntVar(&steps, "s", emulator.STEP_LIMIT_DEFAULT, "Step limit, 0 for unbounded")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&print, "p", false, "Print the machine state after the run")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected exactly one program file", os.Args[0])
	}
	program := flag.Arg(0)

	initial, err := parseMemory(memory)
	if err != nil {
		log.Fatalf("%v: %v", memory, err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.StepLimit = steps

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	status, err := emu.LoadFile(program, initial)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	if status == vm.STATUS_ERRORED {
		log.Fatalf("%v: %v", program, emu.Machine.Fault())
	}

	if status == vm.STATUS_READY {
		_, err = emu.Run()
		if err != nil {
			log.Fatal(err)
		}
	}

	if print {
		fmt.Print(emu.Machine.String())
	}
}
