// Package wordinput reads intcode words from a queue of text streams, such
// as standard input or scripted input files, tracking where each word came
// from so that malformed input can be reported precisely.
package wordinput

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jcorbin/gointcode/internal/runeio"
	"github.com/pkg/errors"
)

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// SyntaxError reports a token that is not a valid word.
type SyntaxError struct {
	Location
	Token string
	Err   error
}

func (se SyntaxError) Error() string {
	return fmt.Sprintf("%v: invalid word %q: %v", se.Location, se.Token, se.Err)
}

func (se SyntaxError) Unwrap() error { return se.Err }

// Input reads comma or whitespace separated words sequentially through a
// Queue of one or more input streams. A stream ending always ends any word
// in progress.
type Input struct {
	Queue []io.Reader

	// Last is the location of the most recently read word.
	Last Location

	cur *runeio.LineReader
	tok strings.Builder
}

// ReadWord reads the next word, returning io.EOF once every queued stream
// is exhausted.
func (in *Input) ReadWord() (int64, error) {
	in.tok.Reset()
	for {
		r, err := in.readRune()
		if err == io.EOF && in.tok.Len() > 0 {
			break
		} else if err != nil {
			return 0, err
		}
		if r == ',' || unicode.IsSpace(r) {
			if in.tok.Len() > 0 {
				break
			}
			continue
		}
		if in.tok.Len() == 0 {
			in.Last = Location{in.cur.Name, in.cur.Line}
		}
		in.tok.WriteRune(r)
	}

	token := in.tok.String()
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, SyntaxError{in.Last, token, errors.Cause(err)}
	}
	return n, nil
}

// readRune reads from the current stream, moving on to the next queued one
// as each runs out; a stream's end reads as a space.
func (in *Input) readRune() (rune, error) {
	if in.cur == nil {
		if len(in.Queue) == 0 {
			return 0, io.EOF
		}
		in.cur = runeio.NewLineReader(in.Queue[0])
		in.Queue = in.Queue[1:]
	}
	r, _, err := in.cur.ReadRune()
	if err == nil {
		return r, nil
	}
	if err != io.EOF {
		return 0, errors.Wrapf(err, "read %v", in.cur.Name)
	}
	in.cur.Close()
	in.cur = nil
	return ' ', nil
}
