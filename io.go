package intcode

import (
	"io"
	"strconv"

	"github.com/jcorbin/gointcode/internal/flushio"
	"github.com/jcorbin/gointcode/internal/runeio"
	"github.com/pkg/errors"
)

// Input is a source of words for a runtime's input requests.
// Sources signal exhaustion with ErrNoMoreInput, or io.EOF.
type Input interface {
	ReadWord() (Word, error)
}

// Output is a sink for a runtime's output.
type Output interface {
	WriteWord(Word) error
}

// InputFunc adapts a function into an Input.
type InputFunc func() (Word, error)

// OutputFunc adapts a function into an Output.
type OutputFunc func(Word) error

// ReadWord calls f.
func (f InputFunc) ReadWord() (Word, error) { return f() }

// WriteWord calls f.
func (f OutputFunc) WriteWord(w Word) error { return f(w) }

// Discard is an Output that drops every word.
var Discard Output = OutputFunc(func(Word) error { return nil })

// ScriptedInput is an Input that yields a fixed sequence of words.
type ScriptedInput struct {
	words []Word
}

// NewScriptedInput creates an Input that yields words in order, then fails
// with ErrNoMoreInput.
func NewScriptedInput(words ...Word) *ScriptedInput {
	return &ScriptedInput{words}
}

// ReadWord returns the next scripted word.
func (si *ScriptedInput) ReadWord() (Word, error) {
	if len(si.words) == 0 {
		return 0, ErrNoMoreInput
	}
	w := si.words[0]
	si.words = si.words[1:]
	return w, nil
}

// Remaining returns any words not yet read.
func (si *ScriptedInput) Remaining() []Word { return si.words }

// CollectOutput is an Output that appends every word to itself.
type CollectOutput []Word

// WriteWord appends w.
func (co *CollectOutput) WriteWord(w Word) error {
	*co = append(*co, w)
	return nil
}

// PrintOutput is an Output that prints every word as a decimal line.
type PrintOutput struct {
	out flushio.WriteFlusher
	buf []byte
}

// NewPrintOutput creates a PrintOutput writing to w; writes may be buffered
// until Flush.
func NewPrintOutput(w io.Writer) *PrintOutput {
	return &PrintOutput{out: flushio.NewWriteFlusher(w)}
}

// WriteWord prints w on its own line.
func (po *PrintOutput) WriteWord(w Word) error {
	po.buf = strconv.AppendInt(po.buf[:0], w, 10)
	po.buf = append(po.buf, '\n')
	_, err := po.out.Write(po.buf)
	return err
}

// Flush flushes any buffered output.
func (po *PrintOutput) Flush() error { return po.out.Flush() }

// ASCIIOutput is an Output for programs that talk in text: words in the
// ASCII range are written as characters, while any other word is printed as
// a decimal line.
type ASCIIOutput struct {
	PrintOutput
}

// NewASCIIOutput creates an ASCIIOutput writing to w; writes may be
// buffered until Flush.
func NewASCIIOutput(w io.Writer) *ASCIIOutput {
	return &ASCIIOutput{PrintOutput{out: flushio.NewWriteFlusher(w)}}
}

// WriteWord writes w as a character, if it is one.
func (ao *ASCIIOutput) WriteWord(w Word) error {
	if 0 <= w && w < 0x80 {
		_, err := runeio.Writer{Writer: ao.out}.WriteRune(rune(w))
		return err
	}
	return ao.PrintOutput.WriteWord(w)
}

// Drive runs rt to completion: reading from in whenever it awaits input,
// and writing each output into out. If out has a Flush() error method, it
// is flushed before every input read and when the runtime halts.
func Drive(rt *Runtime, in Input, out Output) (rerr error) {
	defer func() {
		if ferr := flushOutput(out); rerr == nil {
			rerr = ferr
		}
	}()
	st, err := rt.Resume()
	for err == nil {
		switch st.Kind {
		case AwaitingInput:
			if ferr := flushOutput(out); ferr != nil {
				return ferr
			}
			val, ierr := in.ReadWord()
			if errors.Is(ierr, io.EOF) {
				ierr = ErrNoMoreInput
			}
			if ierr != nil {
				return errors.WithMessagef(ierr, "input for @%v", rt.inputAt)
			}
			st, err = rt.Supply(val)
		case ProducedOutput:
			if oerr := out.WriteWord(st.Output); oerr != nil {
				return errors.WithMessage(oerr, "output")
			}
			st, err = rt.Resume()
		case Complete:
			return nil
		default:
			return errors.Errorf("unexpected runtime state %v", st)
		}
	}
	return err
}

func flushOutput(out Output) error {
	if fl, ok := out.(interface{ Flush() error }); ok {
		return fl.Flush()
	}
	return nil
}
