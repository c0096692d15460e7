// Package amp runs chains of amplifier programs: each amplifier is a
// runtime of the same program that first reads its phase setting, and then
// turns each input signal into an output signal for the next amplifier.
package amp

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jcorbin/gointcode"
	"github.com/jcorbin/gointcode/internal/panicerr"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Chain runs one amplifier per phase in series, feeding signal into the
// first one, and returns the output of the last one.
func Chain(prog intcode.Program, phases []intcode.Word, signal intcode.Word, opts ...intcode.Option) (intcode.Word, error) {
	amps, err := prime(prog, phases, opts...)
	if err != nil {
		return 0, err
	}
	for i, rt := range amps {
		out, _, err := rt.Step(signal)
		if err != nil {
			return 0, errors.WithMessagef(err, "amplifier %v", i)
		}
		signal = out
	}
	return signal, nil
}

// Feedback runs one amplifier per phase in a loop: the last amplifier's
// output feeds back into the first, round after round, until the last
// amplifier halts. Returns the last signal that it emitted.
//
// All amplifiers are driven in turn by the calling goroutine.
func Feedback(prog intcode.Program, phases []intcode.Word, signal intcode.Word, opts ...intcode.Option) (intcode.Word, error) {
	amps, err := prime(prog, phases, opts...)
	if err != nil {
		return 0, err
	}
	if len(amps) == 0 {
		return signal, nil
	}
	for round := 0; ; round++ {
		for i, rt := range amps {
			out, done, err := rt.Step(signal)
			if err != nil {
				return 0, errors.WithMessagef(err, "amplifier %v round %v", i, round)
			}
			signal = out
			if done && i == len(amps)-1 {
				return signal, nil
			}
		}
	}
}

// prime creates a runtime for every phase, supplying each its phase setting.
func prime(prog intcode.Program, phases []intcode.Word, opts ...intcode.Option) ([]*intcode.Runtime, error) {
	amps := make([]*intcode.Runtime, len(phases))
	for i, phase := range phases {
		rt := prog.NewRuntime(opts...)
		st, err := rt.Resume()
		if err == nil && st.Kind != intcode.AwaitingInput {
			err = errors.Errorf("expected phase request, runtime %v", st)
		}
		if err == nil {
			st, err = rt.Supply(phase)
		}
		if err == nil && st.Kind != intcode.AwaitingInput {
			err = errors.Errorf("expected signal request, runtime %v", st)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "amplifier %v phase %v", i, phase)
		}
		amps[i] = rt
	}
	return amps, nil
}

// MaxSignal tries every ordering of the given phase settings, starting each
// chain with a 0 signal, and returns the highest signal with the phases that
// produced it. The first ordering wins any tie.
//
// Each ordering runs on its own independent amplifiers, so several may be
// evaluated at once; a panic while running one is returned as an error.
func MaxSignal(
	ctx context.Context,
	prog intcode.Program,
	settings []intcode.Word,
	feedback bool,
	opts ...intcode.Option,
) (best intcode.Word, phases []intcode.Word, err error) {
	run := Chain
	if feedback {
		run = Feedback
	}

	perms := Permutations(settings)
	signals := make([]intcode.Word, len(perms))
	work := make(chan int)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(work)
		for i := range perms {
			select {
			case work <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for n := runtime.GOMAXPROCS(0); n > 0; n-- {
		eg.Go(func() error {
			for i := range work {
				perm := perms[i]
				if err := panicerr.Recover(fmt.Sprintf("phases %v", perm), func() (err error) {
					signals[i], err = run(prog, perm, 0, opts...)
					return err
				}); err != nil {
					return errors.WithMessagef(err, "phases %v", perm)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}

	for i, signal := range signals {
		if phases == nil || signal > best {
			best, phases = signal, perms[i]
		}
	}
	return best, phases, nil
}
