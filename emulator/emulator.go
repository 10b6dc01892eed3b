// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"
	"slices"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

// Patch is a memory cell override applied after every reset.
type Patch struct {
	Index int
	Value int
}

// Emulator state. Program snapshot + VM + IO channels.
type Emulator struct {
	Verbose     bool // If set, enables verbose logging.
	*intcode.VM      // Current VM; replaced on every Reset.

	Program        []int                  // Initial memory snapshot.
	Listing        *intcode.Program       // Assembler listing, if the program was assembled.
	InstructionSet intcode.InstructionSet // Operations recognized by the VM.
	Patches        []Patch                // Overrides applied on Reset.

	Input  intcode.Input  // Input channel given to each VM.
	Output intcode.Output // Output channel given to each VM.

	ticks int
}

// NewEmulator creates a new emulator for a program snapshot.
func NewEmulator(program []int) (emu *Emulator) {
	emu = &Emulator{
		Program: slices.Clone(program),
	}

	return
}

// NewEmulatorFromListing creates a new emulator for an assembled program.
func NewEmulatorFromListing(prog *intcode.Program) (emu *Emulator) {
	emu = NewEmulator(prog.Memory())
	emu.Listing = prog

	return
}

// Patch records an override of a memory cell, applied on every Reset.
func (emu *Emulator) Patch(index int, value int) {
	emu.Patches = append(emu.Patches, Patch{Index: index, Value: value})
}

// Reset builds a fresh VM from the program snapshot and applies the
// patches. Rewindable input is rewound.
func (emu *Emulator) Reset() (err error) {
	if rw, ok := emu.Input.(io.Rewinder); ok {
		rw.Rewind()
	}

	emu.VM = intcode.NewVM(emu.Program,
		intcode.WithInstructionSet(emu.InstructionSet),
		intcode.WithInput(emu.Input),
		intcode.WithOutput(emu.Output),
	)
	emu.VM.Verbose = emu.Verbose
	emu.ticks = 0

	for _, patch := range emu.Patches {
		if emu.Verbose {
			log.Printf("emulator: patch [%d] = %d", patch.Index, patch.Value)
		}
		err = emu.VM.Write(patch.Index, patch.Value)
		if err != nil {
			return
		}
	}

	return
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// LineNo returns the assembler source line of the current instruction,
// or 0 when unknown.
func (emu *Emulator) LineNo() int {
	if emu.Listing == nil || emu.VM == nil {
		return 0
	}

	dbg := emu.Listing.Debug(emu.VM.Ip())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.VM == nil {
		err = ErrNotReset
		return
	}

	emu.VM.Verbose = emu.Verbose

	ip := emu.VM.Ip()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, LineNo: lineno, Tick: emu.ticks, Err: err}
		}
	}()

	halted := emu.VM.State() == intcode.STATE_HALTED
	done, err = emu.VM.Step()
	if err != nil {
		return
	}

	if !halted {
		emu.ticks++
	}

	return
}

// Run ticks until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted at %d after %d ticks", emu.VM.Ip(), emu.ticks)
	}

	return
}
