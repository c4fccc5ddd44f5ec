package vm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// operationMap maps program text operation names.
var operationMap = map[string]Operation{
	"CLEAR":     OP_CLEAR,
	"AT":        OP_AT,
	"SET":       OP_SET,
	"INSERT":    OP_INSERT,
	"ERASE":     OP_ERASE,
	"ADDCONST":  OP_ADDCONST,
	"SUBCONST":  OP_SUBCONST,
	"MULCONST":  OP_MULCONST,
	"DIVCONST":  OP_DIVCONST,
	"ADDMEM":    OP_ADDMEM,
	"SUBMEM":    OP_SUBMEM,
	"MULMEM":    OP_MULMEM,
	"DIVMEM":    OP_DIVMEM,
	"JUMPREL":   OP_JUMPREL,
	"JUMPZERO":  OP_JUMPZERO,
	"JUMPNZERO": OP_JUMPNZERO,
	"NOOP":      OP_NOOP,
	"HALT":      OP_HALT,
	"OUTPUT":    OP_OUTPUT,
	"CHECKMEM":  OP_CHECKMEM,
}

// link records a jump instruction awaiting label resolution.
type link struct {
	index  int    // Instruction index of the jump.
	label  string // Label the jump targets.
	lineno int
	line   string
}

// Decoder is a single pass decoder for GVM program text.
//
// A program line is an operation name with at most one argument. Comment
// text after '#' and blank lines are skipped. The decoder additionally
// accepts `.equ NAME VALUE` equates, `label:` definitions with jump
// arguments naming a label, and compile-time $(...) expression
// evaluation.
type Decoder struct {
	Verbose bool // If set, verbosely logs the decoder actions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to instruction indexes.
	Equate    map[string]string // Map of equates.

	instructions []Instruction
	links        []link
}

// Predefine defines a new equate or redefines an existing equate.
func (dec *Decoder) Predefine(equ string, value string) {
	if dec.predefine == nil {
		dec.predefine = map[string]string{equ: value}
	} else {
		dec.predefine[equ] = value
	}
}

// Defines returns the decoder's predefined system equates.
func (dec *Decoder) Defines() iter.Seq2[string, string] {
	return maps.All(sysEquate)
}

// valueOf returns the value of a simple word.
func (dec *Decoder) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (dec *Decoder) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range dec.Equate {
		var equval int
		equval, err = dec.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(equval)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine parses a single line into operation words.
func (dec *Decoder) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	dec.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := dec.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	for _, single := range strings.Split(line, " ") {
		if len(single) > 0 {
			words = append(words, single)
		}
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := dec.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		dec.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := dec.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := dec.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if dec.Label == nil {
			dec.Label = make(map[string]int, 16)
		}
		dec.Label[label] = len(dec.instructions)
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// parseWords evaluates the words of a program line as an instruction.
func (dec *Decoder) parseWords(words []string, lineno int, line string) (err error) {
	if len(words) == 0 {
		return
	}

	op, ok := operationMap[words[0]]
	if !ok {
		err = ErrOperationInvalid
		return
	}

	args := words[1:]

	if !op.HasArgument() {
		if len(args) != 0 {
			err = ErrArgumentExtra
			return
		}

		dec.instructions = append(dec.instructions, Instruction{Operation: op, LineNo: lineno})
		return
	}

	if len(args) == 0 {
		err = ErrArgumentMissing
		return
	}
	if len(args) > 1 {
		err = ErrArgumentExtra
		return
	}

	value, err := dec.valueOf(args[0])
	if err != nil {
		if !op.Jump() {
			return
		}

		// A jump argument may name a label, linked after the full
		// program has been seen.
		dec.links = append(dec.links, link{
			index:  len(dec.instructions),
			label:  args[0],
			lineno: lineno,
			line:   line,
		})
		err = nil
		value = 0
	}

	dec.instructions = append(dec.instructions, Instruction{Operation: op, Argument: value, LineNo: lineno})
	return
}

// Parse parses an input stream into a Program containing instructions.
// A malformed line is reported as an ErrSyntax decode failure; a failure
// to read the source itself is returned as-is.
func (dec *Decoder) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int

	clear(dec.Label)
	dec.instructions = dec.instructions[:0]
	dec.links = dec.links[:0]
	dec.Equate = maps.Clone(sysEquate)
	for attr, val := range dec.predefine {
		dec.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if dec.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, "#")
		line := strings.TrimSpace(text_comment[0])

		words, perr := dec.parseLine(line, lineno)
		if perr == nil {
			perr = dec.parseWords(words, lineno, line)
		}
		if perr != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: perr}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels into relative distances.
	for _, lnk := range dec.links {
		target, ok := dec.Label[lnk.label]
		if !ok {
			err = &ErrSyntax{LineNo: lnk.lineno, Line: lnk.line, Err: ErrLabelMissing(lnk.label)}
			return
		}

		dec.instructions[lnk.index].Argument = target - lnk.index
	}

	prog = &Program{
		Instructions: append([]Instruction(nil), dec.instructions...),
	}

	return
}
