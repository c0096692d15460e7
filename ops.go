package intcode

import "strings"

//// Operations

// Opcode selects an operation, it is the lowest two decimal digits of an
// instruction word.
type Opcode uint8

// Instruction is an operation with its parameters bound, but not yet
// dereferenced; it only lives for one decode-execute cycle.
type Instruction struct {
	Op     Opcode
	Params []Param
}

// Each operation's action runs after the program counter has been advanced
// past its instruction. Actions return true to suspend execution.

// Code  Name  Arity  Function
//
//	1  add   3      c = a + b
func (rt *Runtime) add(args []Param) (bool, error) {
	a, b, err := rt.resolve2(args)
	if err != nil {
		return false, err
	}
	return false, rt.write(args[2], a+b)
}

// Code  Name  Arity  Function
//
//	2  mul   3      c = a * b
func (rt *Runtime) mul(args []Param) (bool, error) {
	a, b, err := rt.resolve2(args)
	if err != nil {
		return false, err
	}
	return false, rt.write(args[2], a*b)
}

// Code  Name  Arity  Function
//
//	3  in    1      suspend awaiting a value, which will be written to a
func (rt *Runtime) in(args []Param) (bool, error) {
	addr, err := rt.position(args[0])
	if err != nil {
		return false, err
	}
	rt.inputAt = addr
	rt.state = State{Kind: AwaitingInput}
	rt.logf("suspend input -> @%v", addr)
	return true, nil
}

// Code  Name  Arity  Function
//
//	4  out   1      suspend, emitting a
func (rt *Runtime) out(args []Param) (bool, error) {
	val, err := rt.resolve(args[0])
	if err != nil {
		return false, err
	}
	rt.state = State{Kind: ProducedOutput, Output: val}
	rt.logf("suspend output %v", val)
	return true, nil
}

// Code  Name  Arity  Function
//
//	5  jt    2      if a != 0, jump to b
func (rt *Runtime) jumpTrue(args []Param) (bool, error) {
	a, b, err := rt.resolve2(args)
	if err == nil && a != 0 {
		rt.pc = b
	}
	return false, err
}

// Code  Name  Arity  Function
//
//	6  jf    2      if a == 0, jump to b
func (rt *Runtime) jumpFalse(args []Param) (bool, error) {
	a, b, err := rt.resolve2(args)
	if err == nil && a == 0 {
		rt.pc = b
	}
	return false, err
}

// Code  Name  Arity  Function
//
//	7  lt    3      c = 1 if a < b else 0
func (rt *Runtime) less(args []Param) (bool, error) {
	a, b, err := rt.resolve2(args)
	if err != nil {
		return false, err
	}
	return false, rt.write(args[2], boolWord(a < b))
}

// Code  Name  Arity  Function
//
//	8  eq    3      c = 1 if a == b else 0
func (rt *Runtime) equal(args []Param) (bool, error) {
	a, b, err := rt.resolve2(args)
	if err != nil {
		return false, err
	}
	return false, rt.write(args[2], boolWord(a == b))
}

// Code  Name  Arity  Function
//
//	9  arb   1      relative base += a
func (rt *Runtime) adjustBase(args []Param) (bool, error) {
	a, err := rt.resolve(args[0])
	if err != nil {
		return false, err
	}
	rt.base += a
	return false, nil
}

// Code  Name  Arity  Function
//
//	99  halt  0      stop for good
func (rt *Runtime) halt(args []Param) (bool, error) {
	rt.pc--
	rt.state = State{Kind: Complete}
	rt.logf("halt")
	return true, nil
}

const (
	OpAdd        Opcode = 1
	OpMultiply   Opcode = 2
	OpInput      Opcode = 3
	OpOutput     Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLessThan   Opcode = 7
	OpEquals     Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99

	opMax = 100
)

var (
	opTable [opMax]func(rt *Runtime, args []Param) (bool, error)
	opNames [opMax]string
	opArity [opMax]int8
)

func init() {
	for _, op := range []struct {
		code  Opcode
		name  string
		arity int8
		act   func(rt *Runtime, args []Param) (bool, error)
	}{
		{OpAdd, "add", 3, (*Runtime).add},
		{OpMultiply, "mul", 3, (*Runtime).mul},
		{OpInput, "in", 1, (*Runtime).in},
		{OpOutput, "out", 1, (*Runtime).out},
		{OpJumpTrue, "jt", 2, (*Runtime).jumpTrue},
		{OpJumpFalse, "jf", 2, (*Runtime).jumpFalse},
		{OpLessThan, "lt", 3, (*Runtime).less},
		{OpEquals, "eq", 3, (*Runtime).equal},
		{OpAdjustBase, "arb", 1, (*Runtime).adjustBase},
		{OpHalt, "halt", 0, (*Runtime).halt},
	} {
		opTable[op.code] = op.act
		opNames[op.code] = op.name
		opArity[op.code] = op.arity
	}
}

// Valid returns true if op names a known operation.
func (op Opcode) Valid() bool { return op < opMax && opTable[op] != nil }

// Arity returns the number of parameters that op takes.
func (op Opcode) Arity() int {
	if op < opMax {
		return int(opArity[op])
	}
	return 0
}

func (op Opcode) String() string {
	if op.Valid() {
		return opNames[op]
	}
	return "op" + itoa(Word(op))
}

func (inst Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(inst.Op.String())
	for _, param := range inst.Params {
		sb.WriteByte(' ')
		sb.WriteString(param.String())
	}
	return sb.String()
}

func boolWord(b bool) Word {
	if b {
		return 1
	}
	return 0
}
