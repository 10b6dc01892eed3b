package io

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/intcode/intcode"
)

// LineReader reads one line of interactive input.
type LineReader interface {
	Readline() (string, error)
}

// Console reads input interactively, prompting for each value. Lines that
// are not numbers are reported and re-prompted when Retry is set.
type Console struct {
	Reader LineReader
	Retry  bool
	Report io.Writer // Receives parse complaints when retrying.

	closer io.Closer
}

var _ intcode.Input = (*Console)(nil)

// NewConsole creates a console on the terminal, with line editing and history.
func NewConsole() (con *Console, err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          f("[intcode] input required: "),
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return
	}

	con = &Console{
		Reader: rl,
		Report: rl.Stderr(),
		closer: rl,
	}

	return
}

// Close releases the terminal.
func (con *Console) Close() (err error) {
	if con.closer != nil {
		err = con.closer.Close()
	}

	return
}

// Receive prompts for and reads the next integer.
func (con *Console) Receive() (value int, err error) {
	for {
		var line string
		line, err = con.Reader.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			err = intcode.ErrInputEnd
			return
		}
		if err != nil {
			return
		}

		text := strings.TrimSpace(line)
		value, err = strconv.Atoi(text)
		if err == nil {
			return
		}

		err = intcode.ErrParseInput(text)
		if !con.Retry {
			return
		}

		// Stop retrying once the report is unwritable.
		if con.Report != nil {
			_, werr := io.WriteString(con.Report, err.Error()+"\n")
			if werr != nil {
				return
			}
		}
	}
}
