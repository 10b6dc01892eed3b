package io

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

func TestQueue_Receive(t *testing.T) {
	assert := assert.New(t)

	values := []int{1, -2, 3}
	q := NewQueue(values...)
	values[0] = 100

	for _, expected := range []int{1, -2, 3} {
		value, err := q.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := q.Receive()
	assert.ErrorIs(err, intcode.ErrInputEnd)
	assert.Equal(0, q.Len())

	q.Rewind()
	assert.Equal(3, q.Len())
	value, err := q.Receive()
	assert.NoError(err)
	assert.Equal(1, value)
}

func TestQueue_Send_CapacityFull(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{Capacity: 2}

	assert.NoError(q.Send(1))
	assert.NoError(q.Send(2))
	assert.ErrorIs(q.Send(3), ErrChannelFull)
	assert.Equal([]int{1, 2}, q.Data)
}

func TestQueue_Unread(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue(4, 5, 6)
	_, _ = q.Receive()

	assert.Equal([]int{5, 6}, slices.Collect(q.Unread()))
	assert.Equal(2, q.Len())
}

func TestQueue_Pipe(t *testing.T) {
	assert := assert.New(t)

	// in a, out a*2, twice
	program := []int{3, 11, 1002, 11, 2, 11, 4, 11, 1105, 1, 0, 0}

	in := NewQueue(4, 21)
	out := &Queue{}
	vm := intcode.NewVM(program, intcode.WithInput(in), intcode.WithOutput(out))

	err := vm.Run()
	assert.ErrorIs(err, intcode.ErrInputEnd)
	assert.Equal([]int{8, 42}, out.Data)
}

func TestChannelFunc(t *testing.T) {
	assert := assert.New(t)

	var sent []int
	in := InputFunc(func() (int, error) { return 9, nil })
	out := OutputFunc(func(value int) error {
		sent = append(sent, value)
		return nil
	})

	vm := intcode.NewVM([]int{3, 0, 4, 0, 99}, intcode.WithInput(in), intcode.WithOutput(out))
	assert.NoError(vm.Run())
	assert.Equal([]int{9}, sent)
}
