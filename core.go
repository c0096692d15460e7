package intcode

import (
	"fmt"

	"github.com/jcorbin/gointcode/internal/mem"
)

// Runtime is one execution instance of a Program. Its memory is its own;
// nothing is shared with the Program it came from or any other Runtime.
type Runtime struct {
	mem mem.Words

	pc      Word // program counter
	base    Word // relative base
	inputAt Word // where the next supplied value lands, while AwaitingInput

	state State
	err   error // sticky execution error

	logfn func(mess string, args ...interface{})
}

// StateKind enumerates the states that a Runtime may be suspended in.
type StateKind uint8

const (
	// Ready is the zero state of a Runtime that has not yet been resumed.
	// It is only ever observed through State before the first resume: a
	// successful Resume or Supply always returns one of the three states
	// below.
	Ready StateKind = iota

	// AwaitingInput means that execution is suspended at an input
	// instruction; the next resume must supply a value.
	AwaitingInput

	// ProducedOutput means that execution is suspended just after emitting
	// State.Output; no value is owed back.
	ProducedOutput

	// Complete means that the runtime has halted; it may not be resumed.
	Complete
)

// State describes where a Runtime is suspended.
type State struct {
	Kind   StateKind
	Output Word // valid when Kind is ProducedOutput
}

func (kind StateKind) String() string {
	switch kind {
	case Ready:
		return "ready"
	case AwaitingInput:
		return "awaiting input"
	case ProducedOutput:
		return "produced output"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("StateKind(%d)", uint8(kind))
}

func (st State) String() string {
	if st.Kind == ProducedOutput {
		return fmt.Sprintf("%v %v", st.Kind, st.Output)
	}
	return st.Kind.String()
}

// PC returns the address of the next instruction to execute.
func (rt *Runtime) PC() Word { return rt.pc }

// RelativeBase returns the offset added to relative mode parameters.
func (rt *Runtime) RelativeBase() Word { return rt.base }

// State returns the state that the runtime last suspended in.
func (rt *Runtime) State() State { return rt.state }

// Done returns true once the runtime is Complete, or has failed.
func (rt *Runtime) Done() bool { return rt.state.Kind == Complete || rt.err != nil }

// Err returns any error that terminated execution.
func (rt *Runtime) Err() error { return rt.err }

// Get returns the word at addr; never written addresses read as 0.
func (rt *Runtime) Get(addr Word) (Word, error) { return rt.load(addr) }

// Set writes val to addr. Set may be used before the first resume, e.g. to
// patch in a noun and verb, or between any two resumes.
func (rt *Runtime) Set(addr, val Word) error { return rt.stor(addr, val) }

// Clone returns an independent copy of the runtime, suspended where rt is,
// with its own copy of memory. The trace logging function, if any, is
// shared.
func (rt *Runtime) Clone() *Runtime {
	c := *rt
	c.mem = *rt.mem.Clone()
	return &c
}

// fail records err as the terminal error for this runtime.
func (rt *Runtime) fail(err error) (State, error) {
	rt.err = err
	rt.logf("halt error: %v", err)
	return rt.state, err
}

func (rt *Runtime) logf(mess string, args ...interface{}) {
	if rt.logfn != nil {
		rt.logfn(mess, args...)
	}
}
