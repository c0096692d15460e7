package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is the interpreter's native cell: a 64-bit signed integer.
type Word = int64

// Program is an immutable, parsed, intcode program: a template for any
// number of independent Runtimes.
type Program struct {
	words []Word
}

// ParseError reports a program text token that isn't a valid word.
type ParseError struct {
	Token string
	Text  string
	Err   error
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("invalid word %q in program %q: %v", pe.Token, pe.Text, pe.Err)
}

func (pe ParseError) Unwrap() error { return pe.Err }

// Parse parses comma separated program text, like "1,0,0,3,99". Whitespace
// around the whole text and around every token is ignored; empty text
// parses as an empty program.
func Parse(text string) (Program, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Program{}, nil
	}
	tokens := strings.Split(trimmed, ",")
	words := make([]Word, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		word, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Program{}, ParseError{token, text, err}
		}
		words[i] = word
	}
	return Program{words}, nil
}

// MustParse is like Parse but panics on error; it is intended for program
// literals in tests and examples.
func MustParse(text string) Program {
	prog, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return prog
}

// NewProgram creates a Program from a copy of words.
func NewProgram(words []Word) Program {
	return Program{append([]Word(nil), words...)}
}

// Len returns the number of words in the program.
func (prog Program) Len() int { return len(prog.words) }

// Words returns a copy of the program's words.
func (prog Program) Words() []Word { return append([]Word(nil), prog.words...) }

func (prog Program) String() string {
	var sb strings.Builder
	for i, word := range prog.words {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(itoa(word))
	}
	return sb.String()
}

// NewRuntime returns a new Runtime, with its own copy of the program loaded
// into memory, ready to start executing at address 0.
func (prog Program) NewRuntime(opts ...Option) *Runtime {
	var rt Runtime
	Options(opts...).apply(&rt)
	if err := rt.mem.Stor(0, prog.words...); err != nil {
		rt.fail(err)
	}
	return &rt
}

// Run runs a program that does no I/O: noun and verb are written into
// addresses 1 and 2, and the value left in address 0 is returned after the
// program halts. Any output is discarded; any input request fails with
// ErrNoMoreInput.
func (prog Program) Run(noun, verb Word, opts ...Option) (Word, error) {
	return prog.NewRuntime(opts...).RunNounVerb(noun, verb)
}

// RunNounVerb is Program.Run on a runtime that has not been resumed yet, e.g.
// a Clone of one prepared earlier.
func (rt *Runtime) RunNounVerb(noun, verb Word) (Word, error) {
	if err := rt.Err(); err != nil {
		return 0, err
	}
	if err := rt.Set(1, noun); err != nil {
		return 0, err
	}
	if err := rt.Set(2, verb); err != nil {
		return 0, err
	}
	if err := Drive(rt, NewScriptedInput(), Discard); err != nil {
		return 0, err
	}
	return rt.Get(0)
}

// RunCollectingOutput runs the program to completion, feeding it inputs in
// order, and returns every output that it produced. Any outputs produced
// before an error are returned along with it.
func (prog Program) RunCollectingOutput(inputs []Word, opts ...Option) ([]Word, error) {
	var out CollectOutput
	err := prog.RunWithIO(NewScriptedInput(inputs...), &out, opts...)
	return out, err
}

// RunWithIO runs the program to completion against the given input source
// and output sink.
func (prog Program) RunWithIO(in Input, out Output, opts ...Option) error {
	return Drive(prog.NewRuntime(opts...), in, out)
}
