package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputMissing  = errors.New(f("input channel missing"))
	ErrOutputMissing = errors.New(f("output channel missing"))
	ErrInputEnd      = errors.New(f("input exhausted"))

	// Program text errors
	ErrProgramEmpty = errors.New(f("program empty"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrOperandDestination = errors.New(f("destination must be positional"))
	ErrMnemonicInvalid    = errors.New(f("mnemonic invalid"))
)

// ErrOutOfBounds is returned when a memory access addresses a cell outside
// of memory.
type ErrOutOfBounds struct {
	Position int
}

func (err ErrOutOfBounds) Error() string {
	return f("position %d out of bounds", err.Position)
}

// ErrUnrecognizedInstruction is returned when the opcode at Position is not
// part of the active instruction set.
type ErrUnrecognizedInstruction struct {
	Code     int
	Position int
}

func (err ErrUnrecognizedInstruction) Error() string {
	return f("unrecognized instruction %d at position %d", err.Code, err.Position)
}

// ErrUnrecognizedParameterMode is returned when a mode digit is neither
// positional (0) nor immediate (1). Position is the parameter's cell.
type ErrUnrecognizedParameterMode struct {
	Mode     int
	Position int
}

func (err ErrUnrecognizedParameterMode) Error() string {
	return f("unrecognized parameter mode %d at position %d", err.Mode, err.Position)
}

// ErrParseNumber is returned when a field of program text is not a number.
type ErrParseNumber struct {
	Index int
	Text  string
}

func (err ErrParseNumber) Error() string {
	return f("field %d '%v' is not a number", err.Index, err.Text)
}

// ErrParseInput is returned by input channels when a line is not a number.
type ErrParseInput string

func (err ErrParseInput) Error() string {
	return f("input '%v' is not a number", string(err))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or label", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
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
