package intcode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

type fmtBuf interface {
	Len() int
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteString(s string) (n int, err error)
}

// lineBuffer accumulates one line of dump output at a time.
type lineBuffer struct{ bytes.Buffer }

// WriteTo terminates the buffered line, writes it out, and resets.
func (buf *lineBuffer) WriteTo(w io.Writer) (int64, error) {
	buf.WriteByte('\n')
	return buf.Buffer.WriteTo(w)
}

// Dump writes a human readable description of the runtime's registers and
// state, followed by a disassembly of its memory.
func (rt *Runtime) Dump(w io.Writer) error {
	dump := rtDumper{rt: rt, out: w}
	return dump.dump()
}

// Disassemble writes a disassembly of the program's initial memory.
func (prog Program) Disassemble(w io.Writer) error {
	dump := rtDumper{rt: prog.NewRuntime(), out: w}
	return dump.dumpMem()
}

type rtDumper struct {
	rt  *Runtime
	out io.Writer

	addrWidth int
	err       error
}

func (dump *rtDumper) dump() error {
	dump.printf("# Runtime Dump\n")
	dump.printf("  pc: %v\n", dump.rt.pc)
	dump.printf("  rb: %v\n", dump.rt.base)
	dump.printf("  state: %v\n", dump.rt.state)
	if dump.rt.state.Kind == AwaitingInput {
		dump.printf("  input: @%v\n", dump.rt.inputAt)
	}
	if dump.rt.err != nil {
		dump.printf("  error: %v\n", dump.rt.err)
	}
	if dump.err != nil {
		return dump.err
	}
	return dump.dumpMem()
}

func (dump *rtDumper) printf(mess string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, mess, args...)
	}
}

func (dump *rtDumper) dumpMem() error {
	size := Word(dump.rt.mem.Size())
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(int(size))) + 1
	}
	dump.printf("# Memory\n")

	var buf lineBuffer
	for addr := Word(0); addr < size && dump.err == nil; {
		fmt.Fprintf(&buf, "  @% *v ", dump.addrWidth, addr)
		if addr == dump.rt.pc {
			buf.WriteString("> ")
		}
		addr = dump.formatMem(&buf, addr, size)
		_, dump.err = buf.WriteTo(dump.out)
	}
	return dump.err
}

// formatMem formats memory starting at addr, returning the next address to
// format: either one whole instruction, a single data word, or a run of zeros.
func (dump *rtDumper) formatMem(buf fmtBuf, addr, size Word) Word {
	val, _ := dump.rt.load(addr)

	if val == 0 {
		end := addr + 1
		for end < size {
			if next, _ := dump.rt.load(end); next != 0 {
				break
			}
			end++
		}
		if n := end - addr; n > 1 {
			buf.WriteString("0 x")
			buf.WriteString(itoa(n))
			return end
		}
	}

	if inst, err := dump.rt.decode(addr); err == nil && addr+Word(len(inst.Params)) < size {
		buf.WriteString(inst.String())
		return addr + Word(len(inst.Params)) + 1
	}

	buf.WriteString(itoa(val))
	return addr + 1
}
