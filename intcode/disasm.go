package intcode

import (
	"iter"
	"strconv"
	"strings"
)

// Listing is a disassembled instruction, or a single data cell.
type Listing struct {
	Ip          int
	Instruction *Instruction // Nil for data cells.
	Cells       []int
}

// String renders the listing as assembler source.
func (lst Listing) String() string {
	if lst.Instruction == nil {
		return ".data " + strconv.Itoa(lst.Cells[0])
	}

	inst := lst.Instruction
	words := []string{inst.Op.String()}
	for n, value := range lst.Cells[1:] {
		word := strconv.Itoa(value)
		if inst.Mode(n) == MODE_IMMEDIATE {
			word = "#" + word
		}
		words = append(words, word)
	}

	return strings.Join(words, " ")
}

// Disassemble walks memory from address 0. Cells that do not decode to an
// instruction that re-assembles to the same cell are listed as data.
func Disassemble(cells []int, set InstructionSet) iter.Seq2[int, Listing] {
	return func(yield func(ip int, lst Listing) bool) {
		for ip := 0; ip < len(cells); {
			lst := Listing{Ip: ip, Cells: cells[ip : ip+1]}

			inst, err := Decode(cells[ip], ip, set)
			width := inst.Op.Width()
			if err == nil && ip+width <= len(cells) && inst.encodable(cells[ip]) {
				lst.Instruction = &inst
				lst.Cells = cells[ip : ip+width]
			}

			if !yield(ip, lst) {
				return
			}

			ip += len(lst.Cells)
		}
	}
}

// encodable returns true if the assembler can reproduce raw from the
// instruction's listing. Immediate destinations and mode digits past the
// last parameter have no assembler syntax.
func (inst Instruction) encodable(raw int) bool {
	if len(inst.Modes) > inst.Op.Params() {
		return false
	}

	for n := range inst.Op.Params() {
		if inst.Op.Destination(n) && inst.Mode(n) == MODE_IMMEDIATE {
			return false
		}
	}

	return Encode(inst.Op, inst.Modes...) == raw
}
