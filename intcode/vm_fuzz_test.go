package intcode

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzStep(f *testing.F) {
	for _, op := range []Op{OP_ADD, OP_MULTIPLY, OP_READ_INPUT, OP_WRITE_OUTPUT,
		OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE, OP_LESS_THAN, OP_EQUALS, OP_HALT} {
		for _, modes := range []int{0, 1, 10, 11, 100, 101, 110, 111, 2, 1000} {
			f.Add(modes*100+int(op), int8(5), int8(6), int8(7))
			f.Add(modes*100+int(op), int8(-1), int8(0), int8(8))
		}
	}
	f.Add(-99, int8(0), int8(0), int8(0))
	f.Add(42, int8(0), int8(0), int8(0))

	f.Fuzz(func(t *testing.T, raw int, a, b, c int8) {
		assert := assert.New(t)

		program := []int{raw, int(a), int(b), int(c), 99, 10, 20, 30}
		ch := &testChannel{input: []int{7}}
		vm := NewVM(program, WithInput(ch), WithOutput(ch))

		done, err := vm.Step()

		code_str := fmt.Sprintf("%v", program)

		inst, derr := Decode(raw, 0, INSTRUCTION_SET_FULL)
		if derr != nil {
			assert.Equal(derr, err, code_str)
			assert.Equal(0, vm.Ip(), code_str)
			assert.Equal(program, vm.Memory.Cells(), code_str)
			return
		}

		// Model of a single instruction.
		var expect_err error
		expect_mem := slices.Clone(program)
		expect_ip := inst.Op.Width()
		var expect_output []int

		params := make([]int, inst.Op.Params())
		for n := range params {
			arg := program[1+n]
			if inst.Op.Destination(n) || inst.Mode(n) == MODE_IMMEDIATE {
				params[n] = arg
				continue
			}
			if arg < 0 || arg >= len(program) {
				expect_err = ErrOutOfBounds{Position: arg}
				break
			}
			params[n] = program[arg]
		}

		store := func(dst, value int) {
			if dst < 0 || dst >= len(program) {
				expect_err = ErrOutOfBounds{Position: dst}
				return
			}
			expect_mem[dst] = value
		}

		if expect_err == nil {
			switch inst.Op {
			case OP_ADD:
				store(params[2], params[0]+params[1])
			case OP_MULTIPLY:
				store(params[2], params[0]*params[1])
			case OP_LESS_THAN:
				store(params[2], map[bool]int{false: 0, true: 1}[params[0] < params[1]])
			case OP_EQUALS:
				store(params[2], map[bool]int{false: 0, true: 1}[params[0] == params[1]])
			case OP_READ_INPUT:
				store(params[0], 7)
			case OP_WRITE_OUTPUT:
				expect_output = []int{params[0]}
			case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
				if (params[0] != 0) == (inst.Op == OP_JUMP_IF_TRUE) {
					if params[1] < 0 {
						expect_err = ErrOutOfBounds{Position: params[1]}
					} else {
						expect_ip = params[1]
					}
				}
			case OP_HALT:
				expect_ip = 0
			}
		}

		if expect_err != nil {
			assert.Equal(expect_err, err, code_str)
			assert.False(done, code_str)
			assert.Equal(0, vm.Ip(), code_str)
			assert.Equal(STATE_RUNNING, vm.State(), code_str)
			return
		}

		assert.NoError(err, code_str)
		assert.Equal(inst.Op == OP_HALT, done, code_str)
		assert.Equal(expect_ip, vm.Ip(), code_str)
		assert.Equal(expect_mem, vm.Memory.Cells(), code_str)
		assert.Equal(expect_output, ch.output, code_str)
	})
}
