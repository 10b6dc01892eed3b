// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"ADD":    strconv.Itoa(int(OP_ADD)),
	"MUL":    strconv.Itoa(int(OP_MULTIPLY)),
	"IN":     strconv.Itoa(int(OP_READ_INPUT)),
	"OUT":    strconv.Itoa(int(OP_WRITE_OUTPUT)),
	"JT":     strconv.Itoa(int(OP_JUMP_IF_TRUE)),
	"JF":     strconv.Itoa(int(OP_JUMP_IF_FALSE)),
	"LT":     strconv.Itoa(int(OP_LESS_THAN)),
	"EQ":     strconv.Itoa(int(OP_EQUALS)),
	"HLT":    strconv.Itoa(int(OP_HALT)),
}

// opMap maps mnemonics to operations.
var opMap = map[string]Op{
	OP_ADD.String():           OP_ADD,
	OP_MULTIPLY.String():      OP_MULTIPLY,
	OP_READ_INPUT.String():    OP_READ_INPUT,
	OP_WRITE_OUTPUT.String():  OP_WRITE_OUTPUT,
	OP_JUMP_IF_TRUE.String():  OP_JUMP_IF_TRUE,
	OP_JUMP_IF_FALSE.String(): OP_JUMP_IF_FALSE,
	OP_LESS_THAN.String():     OP_LESS_THAN,
	OP_EQUALS.String():        OP_EQUALS,
	OP_HALT.String():          OP_HALT,
}

var (
	reLabel     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reCharacter = regexp.MustCompile(`'\\?[^']'`)
	reParen     = regexp.MustCompile(`\$\([^\$]*\)`)
)

// link is a label reference waiting for the label's address.
type link struct {
	LineNo int
	Line   string
	Ip     int
	Label  string
}

// Assembler is a single pass assembler for IntCode programs.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	links []link
	line  string
}

// Predefine defines a new equate or redefines an existing equate, applied
// at the start of every Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a number or label. Labels not yet defined
// are recorded for linking and read as zero.
func (asm *Assembler) valueOf(word string, lineno int) (value int, err error) {
	v64, perr := strconv.ParseInt(word, 0, 64)
	if perr == nil {
		value = int(v64)
		return
	}

	if !reLabel.MatchString(word) {
		err = ErrParseValue(word)
		return
	}

	ip, ok := asm.Label[word]
	if ok {
		value = ip
		return
	}

	// Forward reference.
	asm.links = append(asm.links, link{
		LineNo: lineno,
		Line:   asm.line,
		Ip:     asm.currentIp(),
		Label:  word,
	})

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, ip := range asm.Label {
		pred[key] = starlark.MakeInt(ip)
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

// parseLine expands a single line into words, handling character
// constants, expressions, equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "t":
				str = "\t"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return strconv.Itoa(int(str[0]))
	})

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.Itoa(value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		prefix := ""
		if strings.HasPrefix(word, "#") {
			prefix = "#"
			word = word[1:]
		}
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = prefix + equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if !reLabel.MatchString(label) {
			err = ErrLabelSyntax
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
	}

	return
}

// currentIp gets the address of the next generated cell.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: asm.line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.links = asm.links[:0]
	asm.Label = make(map[string]int)
	asm.Equate = make(map[string]string)
	for attr, val := range internal.IterSeq2Concat(maps.All(sysEquate), maps.All(asm.predefine)) {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		asm.line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(asm.line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for _, ln := range asm.links {
		ip, ok := asm.Label[ln.Label]
		if !ok {
			lineno = ln.LineNo
			asm.line = ln.Line
			err = ErrLabelMissing(ln.Label)
			return
		}
		asm.patch(ln.Ip, ip)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Label:   maps.Clone(asm.Label),
	}

	return
}

// patch adds value to the generated cell at ip.
func (asm *Assembler) patch(ip int, value int) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			op.Codes[ip-op.Ip] += value
			return
		}
	}

	log.Panicf("unable to link address %d", ip)
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{LineNo: lineno, Ip: asm.currentIp(), Words: slices.Clone(words)})
	current := &asm.Opcode[len(asm.Opcode)-1]

	defer func() {
		if err == nil && asm.Verbose {
			log.Printf("%v: %04d %v", lineno, current.Ip, current.Codes)
		}
	}()

	// .data VALUE...
	if words[0] == ".data" {
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		for _, word := range words[1:] {
			var value int
			value, err = asm.valueOf(word, lineno)
			if err != nil {
				return
			}
			current.Codes = append(current.Codes, value)
		}
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrMnemonicInvalid
		return
	}

	args := slices.Clone(words[1:])
	if len(args) < op.Params() {
		err = ErrOperandMissing
		return
	}
	if len(args) > op.Params() {
		err = ErrOperandExtra
		return
	}

	modes := make([]Mode, len(args))
	for n, arg := range args {
		if strings.HasPrefix(arg, "#") {
			if op.Destination(n) {
				err = ErrOperandDestination
				return
			}
			modes[n] = MODE_IMMEDIATE
			args[n] = arg[1:]
		}
	}

	current.Codes = append(current.Codes, Encode(op, modes...))
	for _, arg := range args {
		var value int
		value, err = asm.valueOf(arg, lineno)
		if err != nil {
			return
		}
		current.Codes = append(current.Codes, value)
	}

	return
}
