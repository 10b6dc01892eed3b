package config

import (
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown key %v", string(err))
}

type ErrInstructionSet string

func (err ErrInstructionSet) Error() string {
	return f("instruction set '%v' is not full or basic", string(err))
}

// ErrConfig indicates the run file that failed to load.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
