package emulator

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/intcode"
)

const (
	NOUN_ADDRESS   = 1 // Cell patched with the noun.
	VERB_ADDRESS   = 2 // Cell patched with the verb.
	RESULT_ADDRESS = 0 // Cell read after the program halts.
)

// Answer combines a noun and verb into the puzzle answer.
func Answer(noun, verb int) int {
	return 100*noun + verb
}

// Trial runs a fresh VM over program with the noun and verb patched in,
// and returns the result cell.
func Trial(program []int, noun, verb int, opts ...intcode.Option) (result int, err error) {
	vm := intcode.NewVM(program, opts...)

	err = vm.Write(NOUN_ADDRESS, noun)
	if err != nil {
		return
	}
	err = vm.Write(VERB_ADDRESS, verb)
	if err != nil {
		return
	}

	err = vm.Run()
	if err != nil {
		return
	}

	result, err = vm.Read(RESULT_ADDRESS)
	return
}

// match is the lowest noun and verb found so far.
type match struct {
	sync.Mutex
	found bool
	noun  int
	verb  int
}

// record keeps the pair if it precedes the current best.
func (m *match) record(noun, verb int) {
	m.Lock()
	defer m.Unlock()

	if !m.found || noun < m.noun || (noun == m.noun && verb < m.verb) {
		m.found, m.noun, m.verb = true, noun, verb
	}
}

// beaten returns true if a match was found with a noun below noun.
func (m *match) beaten(noun int) bool {
	m.Lock()
	defer m.Unlock()

	return m.found && m.noun < noun
}

// Search tries every noun and verb in [0, limit) until a trial produces
// target, and returns the first match in noun-major order. Trials that fail
// are treated as non-matching. Returns ErrSearchExhausted when no pair
// matches.
func Search(ctx context.Context, program []int, target int, limit int, opts ...intcode.Option) (noun, verb int, err error) {
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	best := &match{}
	for n := range limit {
		if gctx.Err() != nil || best.beaten(n) {
			break
		}
		group.Go(func() error {
			for v := range limit {
				if gctx.Err() != nil || best.beaten(n) {
					return nil
				}
				result, terr := Trial(program, n, v, opts...)
				if terr == nil && result == target {
					best.record(n, v)
					return nil
				}
			}
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return
	}

	switch {
	case ctx.Err() != nil:
		err = ctx.Err()
	case best.found:
		noun, verb = best.noun, best.verb
	default:
		err = ErrSearchExhausted
	}

	return
}

// Search runs Search over the patched program snapshot with the emulator's
// instruction set.
func (emu *Emulator) Search(ctx context.Context, target int, limit int) (noun, verb int, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: search for %d in [0, %d)", target, limit)
	}

	return Search(ctx, emu.Memory.Cells(), target, limit, intcode.WithInstructionSet(emu.InstructionSet))
}
