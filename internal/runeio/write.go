package runeio

import (
	"io"
	"unicode/utf8"
)

// Writer writes runes to an underlying stream in the form a terminal
// expects them: 7-bit as single bytes, NEL as "\r\n", the other C1
// controls as their ESC-prefixed 7-bit form (CSI 0x9b becomes "\x1b["),
// and everything else as utf8.
type Writer struct {
	io.Writer
}

// WriteRune writes one rune.
func (w Writer) WriteRune(r rune) (int, error) {
	switch {
	case r < 0x80:
		if bw, ok := w.Writer.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Writer.Write([]byte{byte(r)})
	case r == 0x85:
		return w.Writer.Write([]byte{'\r', '\n'})
	case r <= 0x9f:
		return w.Writer.Write([]byte{0x1b, byte(r ^ 0xc0)})
	}
	var tmp [utf8.UTFMax]byte
	return w.Writer.Write(tmp[:utf8.EncodeRune(tmp[:], r)])
}

// WriteString writes every rune of s through WriteRune.
func (w Writer) WriteString(s string) (n int, err error) {
	for _, r := range s {
		m, err := w.WriteRune(r)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
