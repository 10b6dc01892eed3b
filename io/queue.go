package io

import (
	"iter"
	"slices"

	"github.com/ezrec/intcode/intcode"
)

// Queue is an in-memory FIFO of integers. Values sent are appended; values
// received are read in order and retained, so a Rewind replays them.
type Queue struct {
	Capacity int // Maximum values held, or 0 for no limit.

	ReadIndex int
	Data      []int
}

var _ Channel = (*Queue)(nil)
var _ Rewinder = (*Queue)(nil)

// NewQueue creates a queue holding values.
func NewQueue(values ...int) *Queue {
	return &Queue{Data: slices.Clone(values)}
}

// Rewind resets the read position to the first value.
func (q *Queue) Rewind() {
	q.ReadIndex = 0
}

// Receive returns the next unread value.
func (q *Queue) Receive() (value int, err error) {
	if q.ReadIndex >= len(q.Data) {
		err = intcode.ErrInputEnd
		return
	}

	value = q.Data[q.ReadIndex]
	q.ReadIndex++

	return
}

// Send appends a value. Returns ErrChannelFull if the queue has reached
// capacity.
func (q *Queue) Send(value int) (err error) {
	if q.Capacity > 0 && len(q.Data) >= q.Capacity {
		err = ErrChannelFull
		return
	}

	q.Data = append(q.Data, value)

	return
}

// Len returns the number of unread values.
func (q *Queue) Len() int {
	return len(q.Data) - q.ReadIndex
}

// Unread iterates over the unread values without consuming them.
func (q *Queue) Unread() iter.Seq[int] {
	return slices.Values(q.Data[q.ReadIndex:])
}
