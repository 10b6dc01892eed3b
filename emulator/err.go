package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotReset        = errors.New(f("emulator not reset"))
	ErrSearchExhausted = errors.New(f("no noun and verb produce the target"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip     int
	LineNo int // Assembler source line, 0 if unknown.
	Tick   int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo > 0 {
		return f("line %d ip %d %v", err.LineNo, err.Ip, err.Err)
	}

	return f("ip %d tick %d %v", err.Ip, err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
