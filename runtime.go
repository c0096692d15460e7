package intcode

import "github.com/pkg/errors"

// Resume advances execution without supplying a value, until the runtime
// next requests input, emits output, or halts.
//
// Resuming a runtime that is AwaitingInput fails with ErrInputExpected and
// leaves it suspended; resuming a Complete runtime fails with ErrComplete.
// Once execution itself has failed (unknown opcode, bad address, etc) every
// later resume returns that same error.
func (rt *Runtime) Resume() (State, error) {
	return rt.resume(0, false)
}

// Supply resumes a runtime that is AwaitingInput, writing val to the address
// that its input instruction named, and then continues like Resume.
//
// Supplying a value to a runtime that isn't awaiting input is not checked:
// the value is simply discarded.
func (rt *Runtime) Supply(val Word) (State, error) {
	return rt.resume(val, true)
}

func (rt *Runtime) resume(val Word, supplied bool) (State, error) {
	if rt.err != nil {
		return rt.state, rt.err
	}
	switch rt.state.Kind {
	case Complete:
		return rt.state, ErrComplete
	case AwaitingInput:
		if !supplied {
			return rt.state, ErrInputExpected
		}
		if err := rt.stor(rt.inputAt, val); err != nil {
			return rt.fail(errors.WithMessagef(err, "input %v", val))
		}
		rt.logf("input %v -> @%v", val, rt.inputAt)
	}
	return rt.run()
}

// Step supplies val to a runtime that is AwaitingInput, and collects the
// single output it produces in response: the one-in one-out pattern of an
// amplifier.
//
// After the output, the runtime is resumed again to its next input request
// or halt; done reports whether it halted, either right after producing out,
// or without producing any output at all (in which case out is 0).
//
// Fails with ErrUnexpectedInput if the runtime asks for more input before
// producing any output, or with ErrExtraOutput if it produces a second
// output before its next input request.
func (rt *Runtime) Step(val Word) (out Word, done bool, err error) {
	st, err := rt.Supply(val)
	if err != nil {
		return 0, false, err
	}
	switch st.Kind {
	case Complete:
		return 0, true, nil
	case AwaitingInput:
		return 0, false, ErrUnexpectedInput
	}
	out = st.Output

	st, err = rt.Resume()
	if err != nil {
		return out, false, err
	}
	switch st.Kind {
	case ProducedOutput:
		return out, false, errors.WithMessagef(ErrExtraOutput, "after %v got %v", out, st.Output)
	case Complete:
		return out, true, nil
	}
	return out, false, nil
}

// StepReading resumes the runtime to collect exactly n outputs without
// supplying any input, e.g. to read an (x, y, tile) burst.
//
// Returns nil (and no error) if the runtime completes before producing n
// outputs. Fails with ErrUnexpectedInput if it asks for input first.
func (rt *Runtime) StepReading(n int) ([]Word, error) {
	outs := make([]Word, 0, n)
	for len(outs) < n {
		st, err := rt.Resume()
		if err != nil {
			return nil, err
		}
		switch st.Kind {
		case Complete:
			return nil, nil
		case AwaitingInput:
			return nil, errors.WithMessagef(ErrUnexpectedInput, "after %v of %v outputs", len(outs), n)
		}
		outs = append(outs, st.Output)
	}
	return outs, nil
}
