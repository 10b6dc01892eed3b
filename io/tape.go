package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/intcode"
)

// Tape provides line oriented I/O: one signed decimal integer per line.
// It wraps an io.Reader for input and io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Receive reads the next line from the input as an integer.
func (tc *Tape) Receive() (value int, err error) {
	if tc.Input == nil {
		err = intcode.ErrInputMissing
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = intcode.ErrInputEnd
		}
		return
	}

	text := strings.TrimSpace(tc.scanner.Text())
	value, err = strconv.Atoi(text)
	if err != nil {
		err = intcode.ErrParseInput(text)
	}

	return
}

// Send writes the value as a line of text.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		err = intcode.ErrOutputMissing
		return
	}

	_, err = io.WriteString(tc.Output, strconv.Itoa(value)+"\n")
	return
}
