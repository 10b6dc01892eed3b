package intcode

import (
	"slices"
)

// Memory is the fixed-length store shared by program text and data.
type Memory struct {
	cell []int
}

// NewMemory creates memory holding a copy of the given cells.
func NewMemory(cells []int) (mem *Memory) {
	mem = &Memory{
		cell: slices.Clone(cells),
	}

	return
}

// Len returns the number of cells.
func (mem *Memory) Len() int {
	return len(mem.cell)
}

// Read returns the value at index.
func (mem *Memory) Read(index int) (value int, err error) {
	if index < 0 || index >= len(mem.cell) {
		err = ErrOutOfBounds{Position: index}
		return
	}

	value = mem.cell[index]
	return
}

// Write overwrites the value at index.
func (mem *Memory) Write(index int, value int) (err error) {
	if index < 0 || index >= len(mem.cell) {
		err = ErrOutOfBounds{Position: index}
		return
	}

	mem.cell[index] = value
	return
}

// Cells returns a copy of the memory contents.
func (mem *Memory) Cells() []int {
	return slices.Clone(mem.cell)
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() *Memory {
	return NewMemory(mem.cell)
}
