package intcode

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Mode selects how a parameter's raw operand is interpreted.
type Mode uint8

const (
	// Position parameters name an address to dereference.
	Position Mode = iota

	// Immediate parameters are the operand value itself; they are never
	// valid write targets.
	Immediate

	// Relative parameters name an address offset from the relative base.
	Relative
)

// Param is a decoded, but not yet dereferenced, instruction parameter.
type Param struct {
	Mode  Mode
	Value Word
}

func (mode Mode) String() string {
	switch mode {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("Mode(%d)", uint8(mode))
}

// String formats a parameter in assembler style:
// position as [addr], immediate as a bare value, and relative as [rb+off].
func (p Param) String() string {
	switch p.Mode {
	case Position:
		return "[" + itoa(p.Value) + "]"
	case Immediate:
		return itoa(p.Value)
	case Relative:
		if p.Value < 0 {
			return "[rb" + itoa(p.Value) + "]"
		}
		return "[rb+" + itoa(p.Value) + "]"
	}
	return fmt.Sprintf("%v(%v)", p.Mode, p.Value)
}

// resolve returns the value of p for use as an input operand.
func (rt *Runtime) resolve(p Param) (Word, error) {
	switch p.Mode {
	case Immediate:
		return p.Value, nil
	case Position:
		return rt.load(p.Value)
	case Relative:
		return rt.load(rt.base + p.Value)
	}
	return 0, errors.Errorf("invalid %v", p.Mode)
}

// position returns the address that p names, for use as a write target.
func (rt *Runtime) position(p Param) (Word, error) {
	switch p.Mode {
	case Position:
		return p.Value, nil
	case Relative:
		return rt.base + p.Value, nil
	case Immediate:
		return 0, ErrImmediateWrite
	}
	return 0, errors.Errorf("invalid %v", p.Mode)
}

func (rt *Runtime) resolve2(args []Param) (a, b Word, err error) {
	if a, err = rt.resolve(args[0]); err == nil {
		b, err = rt.resolve(args[1])
	}
	return a, b, err
}

func (rt *Runtime) write(p Param, val Word) error {
	addr, err := rt.position(p)
	if err == nil {
		err = rt.stor(addr, val)
	}
	return err
}

func itoa(w Word) string { return strconv.FormatInt(w, 10) }
