package intcode

import (
	"strings"
)

// Op is an IntCode operation code, the two least significant decimal digits
// of an instruction cell.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD           = Op(1)  // add
	OP_MULTIPLY      = Op(2)  // mul
	OP_READ_INPUT    = Op(3)  // in
	OP_WRITE_OUTPUT  = Op(4)  // out
	OP_JUMP_IF_TRUE  = Op(5)  // jt
	OP_JUMP_IF_FALSE = Op(6)  // jf
	OP_LESS_THAN     = Op(7)  // lt
	OP_EQUALS        = Op(8)  // eq
	OP_HALT          = Op(99) // hlt
)

// Params returns the number of parameter cells following the opcode cell.
func (op Op) Params() int {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LESS_THAN, OP_EQUALS:
		return 3
	case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
		return 2
	case OP_READ_INPUT, OP_WRITE_OUTPUT:
		return 1
	}

	return 0
}

// Width returns the encoded width in cells, including the opcode cell.
func (op Op) Width() int {
	return op.Params() + 1
}

// Destination returns true if parameter n is a write target. Write targets
// are always taken literally as an address, whatever their mode digit says.
func (op Op) Destination(n int) bool {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LESS_THAN, OP_EQUALS:
		return n == 2
	case OP_READ_INPUT:
		return n == 0
	}

	return false
}

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITIONAL = Mode(0) // pos
	MODE_IMMEDIATE  = Mode(1) // imm
)

// InstructionSet selects which operations a VM recognizes.
type InstructionSet int

const (
	INSTRUCTION_SET_FULL  = InstructionSet(0) // All nine operations.
	INSTRUCTION_SET_BASIC = InstructionSet(1) // add, mul and hlt only.
)

// Has returns true if op is part of the instruction set.
func (set InstructionSet) Has(op Op) bool {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_HALT:
		return true
	case OP_READ_INPUT, OP_WRITE_OUTPUT,
		OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE,
		OP_LESS_THAN, OP_EQUALS:
		return set == INSTRUCTION_SET_FULL
	}

	return false
}

// Instruction is a decoded instruction cell.
type Instruction struct {
	Op    Op
	Modes []Mode // Mode digits actually present in the cell, first parameter first.
}

// Mode returns the addressing mode of parameter n. Parameters without an
// explicit mode digit are positional.
func (inst Instruction) Mode(n int) Mode {
	if n < len(inst.Modes) {
		return inst.Modes[n]
	}

	return MODE_POSITIONAL
}

// String returns the instruction as mnemonic and parameter modes.
func (inst Instruction) String() string {
	words := []string{inst.Op.String()}
	for n := range inst.Op.Params() {
		words = append(words, inst.Mode(n).String())
	}

	return strings.Join(words, ".")
}

// Decode decodes the raw instruction cell found at position.
func Decode(raw int, position int, set InstructionSet) (inst Instruction, err error) {
	if raw < 0 {
		err = ErrUnrecognizedInstruction{Code: raw, Position: position}
		return
	}

	op := Op(raw % 100)
	if !set.Has(op) {
		err = ErrUnrecognizedInstruction{Code: int(op), Position: position}
		return
	}

	inst.Op = op
	for n, digits := 0, raw/100; digits != 0; n, digits = n+1, digits/10 {
		mode := Mode(digits % 10)
		switch mode {
		case MODE_POSITIONAL, MODE_IMMEDIATE:
			inst.Modes = append(inst.Modes, mode)
		default:
			err = ErrUnrecognizedParameterMode{Mode: int(mode), Position: position + 1 + n}
			return
		}
	}

	return
}

// Encode returns the raw instruction cell for op with the given modes.
// Trailing positional modes are left implicit.
func Encode(op Op, modes ...Mode) (raw int) {
	scale := 100
	for _, mode := range modes {
		raw += int(mode) * scale
		scale *= 10
	}

	raw += int(op)
	return
}
