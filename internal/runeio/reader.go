// Package runeio provides rune-level reading and writing helpers.
package runeio

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader reads runes from a named stream, counting lines as it goes.
type LineReader struct {
	// Name identifies the stream, e.g. a file name.
	Name string

	// Line is the 1-based number of the line that the next rune comes from.
	Line int

	src io.Reader
	rr  io.RuneReader
}

// NewLineReader creates a LineReader around r, named by any Name() string
// method that r has. A bufio.Reader provides rune reading if r is not
// already an io.RuneReader.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{Name: NameOf(r), Line: 1, src: r}
	if rr, ok := r.(io.RuneReader); ok {
		lr.rr = rr
	} else {
		lr.rr = bufio.NewReader(r)
	}
	return lr
}

// ReadRune reads the next rune, advancing Line after every newline.
func (lr *LineReader) ReadRune() (r rune, size int, err error) {
	r, size, err = lr.rr.ReadRune()
	if err == nil && r == '\n' {
		lr.Line++
	}
	return r, size, err
}

// Close closes the underlying stream if it is an io.Closer.
func (lr *LineReader) Close() error {
	if cl, ok := lr.src.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// NameOf returns the Name() of obj, or a placeholder naming its type.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
