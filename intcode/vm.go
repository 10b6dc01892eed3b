package intcode

import (
	"log"
)

// Input is a source of integers consumed by the in instruction.
type Input interface {
	// Receive returns the next input value, blocking until one is available.
	Receive() (value int, err error)
}

// Output is a sink for integers emitted by the out instruction.
type Output interface {
	// Send emits one output value.
	Send(value int) error
}

// State is the execution state of a VM.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// VM is the simulation context for a single IntCode program.
type VM struct {
	Verbose bool // Set to enable verbose logging.

	Memory *Memory // Program and data.
	Input  Input   // Source for the in instruction.
	Output Output  // Sink for the out instruction.

	ip    int            // Instruction pointer.
	set   InstructionSet // Recognized operations.
	state State          // Running or halted.
	fault error          // First fatal error, if any.
}

// Option configures a VM at construction.
type Option func(vm *VM)

// WithInstructionSet selects the recognized operations.
func WithInstructionSet(set InstructionSet) Option {
	return func(vm *VM) { vm.set = set }
}

// WithInput attaches an input channel.
func WithInput(in Input) Option {
	return func(vm *VM) { vm.Input = in }
}

// WithOutput attaches an output channel.
func WithOutput(out Output) Option {
	return func(vm *VM) { vm.Output = out }
}

// NewVM creates a VM with its own copy of program, with the instruction
// pointer at 0.
func NewVM(program []int, opts ...Option) (vm *VM) {
	vm = &VM{
		Memory: NewMemory(program),
	}

	for _, opt := range opts {
		opt(vm)
	}

	return
}

// Ip returns the current instruction pointer.
func (vm *VM) Ip() int {
	return vm.ip
}

// State returns the current execution state.
func (vm *VM) State() State {
	return vm.state
}

// InstructionSet returns the recognized operations.
func (vm *VM) InstructionSet() InstructionSet {
	return vm.set
}

// Read returns the memory cell at index.
func (vm *VM) Read(index int) (value int, err error) {
	return vm.Memory.Read(index)
}

// Write overwrites the memory cell at index.
func (vm *VM) Write(index int, value int) (err error) {
	return vm.Memory.Write(index, value)
}

// Fetch decodes the instruction at the instruction pointer.
func (vm *VM) Fetch() (inst Instruction, err error) {
	raw, err := vm.Memory.Read(vm.ip)
	if err != nil {
		return
	}

	inst, err = Decode(raw, vm.ip, vm.set)
	return
}

// Step decodes and executes a single instruction. done is set once the
// program has halted. After a fatal error, Step keeps returning it.
func (vm *VM) Step() (done bool, err error) {
	if vm.fault != nil {
		err = vm.fault
		return
	}

	if vm.state == STATE_HALTED {
		done = true
		return
	}

	defer func() {
		if err != nil {
			vm.fault = err
		}
	}()

	inst, err := vm.Fetch()
	if err != nil {
		return
	}

	if vm.Verbose {
		log.Printf("%04d: %v", vm.ip, inst)
	}

	err = vm.Execute(inst)
	if err != nil {
		return
	}

	done = vm.state == STATE_HALTED
	return
}

// Run steps until the program halts or fails.
func (vm *VM) Run() (err error) {
	for done := false; !done; {
		done, err = vm.Step()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a decoded instruction located at the instruction pointer.
func (vm *VM) Execute(inst Instruction) (err error) {
	next_ip := vm.ip + inst.Op.Width()

	switch inst.Op {
	case OP_ADD, OP_MULTIPLY, OP_LESS_THAN, OP_EQUALS:
		var lhs, rhs, dst int
		lhs, err = vm.param(inst, 0)
		if err != nil {
			return
		}
		rhs, err = vm.param(inst, 1)
		if err != nil {
			return
		}
		dst, err = vm.param(inst, 2)
		if err != nil {
			return
		}
		err = vm.Memory.Write(dst, vm.doAlu(inst.Op, lhs, rhs))
		if err != nil {
			return
		}
	case OP_READ_INPUT:
		var dst, value int
		dst, err = vm.param(inst, 0)
		if err != nil {
			return
		}
		if vm.Input == nil {
			err = ErrInputMissing
			return
		}
		value, err = vm.Input.Receive()
		if err != nil {
			return
		}
		if vm.Verbose {
			log.Printf("%04d: in %d -> [%d]", vm.ip, value, dst)
		}
		err = vm.Memory.Write(dst, value)
		if err != nil {
			return
		}
	case OP_WRITE_OUTPUT:
		var value int
		value, err = vm.param(inst, 0)
		if err != nil {
			return
		}
		if vm.Output == nil {
			err = ErrOutputMissing
			return
		}
		if vm.Verbose {
			log.Printf("%04d: out %d", vm.ip, value)
		}
		err = vm.Output.Send(value)
		if err != nil {
			return
		}
	case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
		var value, target int
		value, err = vm.param(inst, 0)
		if err != nil {
			return
		}
		target, err = vm.param(inst, 1)
		if err != nil {
			return
		}
		if (value != 0) == (inst.Op == OP_JUMP_IF_TRUE) {
			if target < 0 {
				err = ErrOutOfBounds{Position: target}
				return
			}
			next_ip = target
		}
	case OP_HALT:
		vm.state = STATE_HALTED
		return
	default:
		err = ErrUnrecognizedInstruction{Code: int(inst.Op), Position: vm.ip}
		return
	}

	vm.ip = next_ip

	return
}

// param resolves parameter n of the instruction at the instruction pointer.
// Destinations supply their raw cell as an address; sources honor their
// addressing mode.
func (vm *VM) param(inst Instruction, n int) (value int, err error) {
	raw, err := vm.Memory.Read(vm.ip + 1 + n)
	if err != nil {
		return
	}

	if inst.Op.Destination(n) || inst.Mode(n) == MODE_IMMEDIATE {
		value = raw
		return
	}

	value, err = vm.Memory.Read(raw)
	return
}

// doAlu performs the arithmetic or comparison for op.
func (vm *VM) doAlu(op Op, lhs, rhs int) (output int) {
	switch op {
	case OP_ADD:
		output = lhs + rhs
	case OP_MULTIPLY:
		output = lhs * rhs
	case OP_LESS_THAN:
		if lhs < rhs {
			output = 1
		}
	case OP_EQUALS:
		if lhs == rhs {
			output = 1
		}
	}

	return
}
