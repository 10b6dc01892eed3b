package intcode

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

// ParseProgram parses a line of comma separated integers into memory cells.
func ParseProgram(text string) (cells []int, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	fields := strings.Split(text, ",")
	cells = make([]int, 0, len(fields))
	for n, field := range fields {
		var value int
		value, err = strconv.Atoi(field)
		if err != nil {
			err = ErrParseNumber{Index: n, Text: field}
			cells = nil
			return
		}
		cells = append(cells, value)
	}

	return
}

// ReadProgram reads and parses program text from input.
func ReadProgram(input io.Reader) (cells []int, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return ParseProgram(string(text))
}

// FormatProgram renders memory cells as program text.
func FormatProgram(cells []int) string {
	fields := make([]string, len(cells))
	for n, value := range cells {
		fields[n] = strconv.Itoa(value)
	}

	return strings.Join(fields, ",")
}

// Opcode is a line of assembled source with the cells it generated.
type Opcode struct {
	LineNo int
	Ip     int
	Words  []string
	Codes  []int
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int
}

// Debug locates the source line that generated the cell at ip.
type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Codes iterates over every generated cell and its address.
func (prog *Program) Codes() iter.Seq2[int, int] {
	return func(yield func(ip int, code int) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+n, code) {
					return
				}
			}
		}
	}
}

// Memory returns the initial memory image of the program.
func (prog *Program) Memory() (cells []int) {
	for ip, code := range prog.Codes() {
		for len(cells) <= ip {
			cells = append(cells, 0)
		}
		cells[ip] = code
	}

	return
}
