// Package io provides input and output channels for the IntCode VM.
// It includes a line oriented Tape over readers and writers, an
// interactive Console, and an in-memory Queue.
package io

import (
	"github.com/ezrec/intcode/intcode"
)

// Channel is both a source and a sink of integers.
type Channel interface {
	intcode.Input
	intcode.Output
}

// Rewinder is implemented by channels that can replay their input.
type Rewinder interface {
	// Rewind resets the channel to its initial read position.
	Rewind()
}

// InputFunc adapts a function to intcode.Input.
type InputFunc func() (int, error)

// Receive calls fn().
func (fn InputFunc) Receive() (int, error) {
	return fn()
}

// OutputFunc adapts a function to intcode.Output.
type OutputFunc func(value int) error

// Send calls fn(value).
func (fn OutputFunc) Send(value int) error {
	return fn(value)
}
