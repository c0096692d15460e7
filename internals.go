package intcode

import (
	"fmt"

	"github.com/pkg/errors"
)

func (rt *Runtime) load(addr Word) (Word, error) {
	if addr < 0 {
		return 0, AddressError(addr)
	}
	return rt.mem.Load(uint(addr))
}

func (rt *Runtime) stor(addr, val Word) error {
	if addr < 0 {
		return AddressError(addr)
	}
	return rt.mem.Stor(uint(addr), val)
}

// decode reads the instruction at addr, binding its operands to parameters
// without dereferencing any of them.
func (rt *Runtime) decode(addr Word) (inst Instruction, err error) {
	word, err := rt.load(addr)
	if err != nil {
		return inst, err
	}

	code := word % 100
	if code < 0 || opTable[code] == nil {
		return inst, OpcodeError{addr, word}
	}
	inst.Op = Opcode(code)

	var operands [3]Word
	vals := operands[:opArity[code]]
	if err := rt.mem.LoadInto(uint(addr)+1, vals); err != nil {
		return Instruction{}, err
	}

	modes := word / 100
	inst.Params = make([]Param, len(vals))
	for i, val := range vals {
		mode := Mode(modes % 10)
		modes /= 10
		if mode > Relative {
			return Instruction{}, ModeError{addr, word, i}
		}
		inst.Params[i] = Param{mode, val}
	}
	return inst, nil
}

// exec runs one decoded instruction. The program counter is advanced past
// the instruction before its action runs, so jumps simply overwrite it.
func (rt *Runtime) exec(inst Instruction) (suspend bool, err error) {
	rt.pc += Word(len(inst.Params)) + 1
	return opTable[inst.Op](rt, inst.Params)
}

// run executes instructions until the runtime suspends or fails.
func (rt *Runtime) run() (State, error) {
	for {
		at := rt.pc
		inst, err := rt.decode(at)
		if err != nil {
			return rt.fail(errors.WithMessagef(err, "decode @%v", at))
		}
		if rt.logfn != nil {
			rt.logf("exec @%v %v -- rb:%v", at, inst, rt.base)
		}
		suspend, err := rt.exec(inst)
		if err != nil {
			return rt.fail(errors.WithMessagef(err, "exec @%v %v", at, inst))
		}
		if suspend {
			return rt.state, nil
		}
	}
}

var (
	// ErrComplete is returned when resuming a Complete runtime.
	ErrComplete = errors.New("runtime already complete")

	// ErrInputExpected is returned when resuming a runtime that is
	// AwaitingInput without supplying a value.
	ErrInputExpected = errors.New("expected to resume with input")

	// ErrNoMoreInput is returned by input sources once they're exhausted.
	ErrNoMoreInput = errors.New("no more input")

	// ErrImmediateWrite is returned when an instruction tries to write
	// through an immediate parameter.
	ErrImmediateWrite = errors.New("immediate parameter used as write target")

	// ErrUnexpectedInput is returned by Step-ing helpers when a runtime
	// asks for input where output was expected.
	ErrUnexpectedInput = errors.New("expected output, runtime requested input")

	// ErrExtraOutput is returned by Step when a runtime produces more than
	// one output before its next input request.
	ErrExtraOutput = errors.New("more than one output before next input request")
)

// OpcodeError reports an instruction word with no matching operation.
type OpcodeError struct {
	Addr Word
	Word Word
}

// ModeError reports an instruction word with a parameter mode digit outside
// of {0, 1, 2}.
type ModeError struct {
	Addr  Word
	Word  Word
	Param int
}

// AddressError reports a negative effective address.
type AddressError Word

func (oe OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %v in %v @%v", oe.Word%100, oe.Word, oe.Addr)
}

func (me ModeError) Error() string {
	mode := me.Word / 100
	for i := 0; i < me.Param; i++ {
		mode /= 10
	}
	return fmt.Sprintf("unknown parameter mode %v for param %v in %v @%v",
		mode%10, me.Param+1, me.Word, me.Addr)
}

func (addr AddressError) Error() string { return fmt.Sprintf("invalid address %v", Word(addr)) }
