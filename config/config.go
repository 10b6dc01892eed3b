// Package config handles intcode TOML run files.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/intcode"
)

const (
	DEFAULT_SEARCH_LIMIT = 100 // Nouns and verbs are tried in [0, limit).
)

// Config describes a single program run.
type Config struct {
	Program        string `toml:"program"`         // Path of comma separated program text.
	Source         string `toml:"source"`          // Path of assembler source, used instead of Program.
	InstructionSet string `toml:"instruction-set"` // "full" (default) or "basic".
	Verbose        bool   `toml:"verbose"`

	Patch  []Patch `toml:"patch"`
	Inputs []int   `toml:"inputs"`
	Search *Search `toml:"search"`

	// Dir is the directory containing the run file (set at load time).
	Dir string `toml:"-"`
}

// Patch overrides a memory cell before the run.
type Patch struct {
	Index int `toml:"index"`
	Value int `toml:"value"`
}

// Search configures a noun/verb search instead of a single run.
type Search struct {
	Target int `toml:"target"`
	Limit  int `toml:"limit"`
}

// Load parses a run file.
func Load(path string) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg, err = Parse(string(data))
	if err != nil {
		return
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	return
}

// Parse parses run file text. Relative paths are left unresolved.
func Parse(text string) (cfg *Config, err error) {
	cfg = &Config{}

	meta, err := toml.Decode(text, cfg)
	if err != nil {
		return
	}

	undecoded := meta.Undecoded()
	if len(undecoded) > 0 {
		err = ErrUnknownKey(undecoded[0].String())
		return
	}

	// Defaults
	if len(cfg.InstructionSet) == 0 {
		cfg.InstructionSet = "full"
	}
	if cfg.Search != nil && cfg.Search.Limit == 0 {
		cfg.Search.Limit = DEFAULT_SEARCH_LIMIT
	}

	_, err = cfg.Set()
	return
}

// Set returns the configured instruction set.
func (cfg *Config) Set() (set intcode.InstructionSet, err error) {
	switch cfg.InstructionSet {
	case "full":
		set = intcode.INSTRUCTION_SET_FULL
	case "basic":
		set = intcode.INSTRUCTION_SET_BASIC
	default:
		err = ErrInstructionSet(cfg.InstructionSet)
	}

	return
}

// Path resolves a path from the run file relative to its directory.
func (cfg *Config) Path(name string) string {
	if len(name) == 0 || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(cfg.Dir, name)
}
