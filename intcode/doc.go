// Package intcode implements the IntCode virtual machine, its assembler and
// disassembler.
//
// An IntCode program is a flat array of integers that is both code and data.
// Each instruction cell holds a two digit operation code, with the remaining
// decimal digits selecting positional (0) or immediate (1) addressing for
// each parameter. Instructions are decoded from memory on every step, so a
// program may rewrite its own code.
//
// The assembler provides a small language over the instruction set,
// supporting labels, equates, and compile-time $(...) expression evaluation.
package intcode
