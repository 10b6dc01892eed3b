// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// patchList collects -p idx=val overrides.
type patchList []config.Patch

func (pl *patchList) String() string {
	words := make([]string, len(*pl))
	for n, patch := range *pl {
		words[n] = strconv.Itoa(patch.Index) + "=" + strconv.Itoa(patch.Value)
	}
	return strings.Join(words, ",")
}

func (pl *patchList) Set(text string) (err error) {
	index, value, ok := strings.Cut(text, "=")
	if !ok {
		err = errors.New(f("patch '%v' is not index=value", text))
		return
	}

	var patch config.Patch
	patch.Index, err = strconv.Atoi(index)
	if err != nil {
		return
	}
	patch.Value, err = strconv.Atoi(value)
	if err != nil {
		return
	}

	*pl = append(*pl, patch)
	return
}

func main() {
	var run_file string
	var source string
	var listing bool
	var input string
	var output string
	var patches patchList
	var search string
	var verbose bool

	flag.StringVar(&run_file, "c", "", ".toml run file to use")
	flag.StringVar(&source, "a", "", ".asm file to assemble")
	flag.BoolVar(&listing, "l", false, "List the program, do not execute")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.Var(&patches, "p", "Patch memory cell before running, as index=value")
	flag.StringVar(&search, "search", "", "Search for the noun and verb producing this target")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	cfg := &config.Config{InstructionSet: "full"}
	if len(run_file) != 0 {
		var err error
		cfg, err = config.Load(run_file)
		if err != nil {
			log.Fatal(err)
		}
	}

	program := cfg.Path(cfg.Program)
	if len(cfg.Source) != 0 {
		source = cfg.Path(cfg.Source)
	}
	if flag.NArg() == 1 {
		program = flag.Arg(0)
		source = ""
	}
	verbose = verbose || cfg.Verbose

	set, err := cfg.Set()
	if err != nil {
		log.Fatalf("%v: %v", run_file, err)
	}

	var emu *emulator.Emulator

	switch {
	case len(source) != 0:
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer inf.Close()

		asm := &intcode.Assembler{Verbose: verbose}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		emu = emulator.NewEmulatorFromListing(prog)
	case len(program) != 0:
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()

		cells, err := intcode.ReadProgram(inf)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		emu = emulator.NewEmulator(cells)
	default:
		log.Fatalf("%v: %v", os.Args[0], f("no program given"))
	}

	emu.Verbose = verbose
	emu.InstructionSet = set

	if listing {
		for ip, lst := range intcode.Disassemble(emu.Program, set) {
			fmt.Printf("%04d: %v\n", ip, lst)
		}
		return
	}

	for _, patch := range append(cfg.Patch, patches...) {
		emu.Patch(patch.Index, patch.Value)
	}

	if len(search) != 0 || cfg.Search != nil {
		target, limit := 0, config.DEFAULT_SEARCH_LIMIT
		if cfg.Search != nil {
			target, limit = cfg.Search.Target, cfg.Search.Limit
		}
		if len(search) != 0 {
			target, err = strconv.Atoi(search)
			if err != nil {
				log.Fatalf("-search: %v", err)
			}
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		noun, verb, err := emu.Search(ctx, target, limit)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		fmt.Printf("noun=%d verb=%d answer=%d\n", noun, verb, emulator.Answer(noun, verb))
		return
	}

	tape := &io.Tape{}

	switch {
	case len(cfg.Inputs) != 0 && input == "-":
		emu.Input = io.NewQueue(cfg.Inputs...)
	case input == "-" && readline.IsTerminal(int(os.Stdin.Fd())):
		con, err := io.NewConsole()
		if err != nil {
			log.Fatal(err)
		}
		defer con.Close()
		con.Retry = true
		emu.Input = con
	case input == "-":
		tape.Input = os.Stdin
		emu.Input = tape
	default:
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		tape.Input = inf
		emu.Input = tape
	}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		tape.Output = ouf
	}
	emu.Output = tape

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	value, err := emu.Read(0)
	if err == nil {
		fmt.Println(value)
	}
}
