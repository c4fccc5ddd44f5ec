package vm

import (
	"errors"

	"github.com/gritvm/gritvm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrMemoryRange      = errors.New(f("memory location out of range"))
	ErrInsertRange      = errors.New(f("insert location beyond memory end"))
	ErrDivideByZero     = errors.New(f("divide by zero"))
	ErrJumpDistance     = errors.New(f("jump distance zero"))
	ErrMemoryTooSmall   = errors.New(f("memory smaller than checked size"))
	ErrOperationUnknown = errors.New(f("operation unknown"))

	// Decoder errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrOperationInvalid = errors.New(f("operation invalid"))
	ErrArgumentMissing  = errors.New(f("argument missing"))
	ErrArgumentExtra    = errors.New(f("excessive arguments"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrOperation Instruction

func (eo ErrOperation) Error() string {
	return f("instruction %v", Instruction(eo).String())
}

func (eo ErrOperation) Is(err error) (ok bool) {
	_, ok = err.(ErrOperation)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
