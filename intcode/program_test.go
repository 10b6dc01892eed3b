package intcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text     string
		expected []int
	}{
		{"1,0,0,0,99", []int{1, 0, 0, 0, 99}},
		{"1,0,0,0,99\n", []int{1, 0, 0, 0, 99}},
		{"99", []int{99}},
		{"1101,100,-1,4,0", []int{1101, 100, -1, 4, 0}},
		{"+3,-0", []int{3, 0}},
	}

	for _, entry := range table {
		cells, err := ParseProgram(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.expected, cells, entry.text)
	}
}

func TestParseProgram_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		err  error
	}{
		{"", ErrProgramEmpty},
		{" \n", ErrProgramEmpty},
		{"1,2,,3", ErrParseNumber{Index: 2, Text: ""}},
		{"1,x,3", ErrParseNumber{Index: 1, Text: "x"}},
		{"1, 2", ErrParseNumber{Index: 1, Text: " 2"}},
		{"1,2,", ErrParseNumber{Index: 2, Text: ""}},
		{"1;2", ErrParseNumber{Index: 0, Text: "1;2"}},
	}

	for _, entry := range table {
		cells, err := ParseProgram(entry.text)
		assert.Equal(entry.err, err, entry.text)
		assert.Nil(cells, entry.text)
	}
}

func TestReadProgram(t *testing.T) {
	assert := assert.New(t)

	cells, err := ReadProgram(strings.NewReader("2,3,0,3,99\n"))
	assert.NoError(err)
	assert.Equal([]int{2, 3, 0, 3, 99}, cells)
}

func TestFormatProgram(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", FormatProgram(nil))
	assert.Equal("99", FormatProgram([]int{99}))
	assert.Equal("3500,9,10,70,2,3,11,0,99,30,40,50",
		FormatProgram([]int{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}))

	cells, err := ParseProgram(FormatProgram([]int{1101, -7, 0, 3, 99}))
	assert.NoError(err)
	assert.Equal([]int{1101, -7, 0, 3, 99}, cells)
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{"add", "5", "6", "0"}, Codes: []int{1, 5, 6, 0}},
			{LineNo: 3, Ip: 4, Words: []string{"hlt"}, Codes: []int{99}},
			{LineNo: 4, Ip: 5, Words: []string{".data", "2", "3"}, Codes: []int{2, 3}},
		},
	}

	dbg := prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(6)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(7)
	assert.Nil(dbg.Opcode)

	assert.Equal([]int{1, 5, 6, 0, 99, 2, 3}, prog.Memory())

	var ips []int
	for ip := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 4 {
			break
		}
	}
	assert.Equal([]int{0, 1, 2, 3, 4}, ips)
}
