/*
Package intcode implements a small resumable integer machine.

An intcode program is a list of signed integers, "words", separated by commas
(like 1,0,0,3,99). The same list is both the program's code and its initial
memory: a running program reads and writes any address, including the words
that make up its own instructions, and may use scratch space far past its own
end.

Section 1: memory

Memory is conceptually infinite. Any address that has never been written
reads as 0; writing a far away address only allocates a page of memory around
it (see internal/mem). Addresses are never negative in a correct program; a
negative effective address fails the runtime rather than wrapping.

Section 2: instructions

Execution starts at address 0. The word at the program counter holds the
opcode in its lowest two decimal digits; every digit above that selects the
addressing mode of one parameter, least significant first:

	ABCDE
	 1002

	DE - two-digit opcode,      02 == multiply
	 C - mode of 1st parameter,  0 == position
	 B - mode of 2nd parameter,  1 == immediate
	 A - mode of 3rd parameter,  0 == position, omitted due to being a leading zero

Position parameters name an address, immediate parameters are the value
itself, and relative parameters name an address relative to the runtime's
relative base, which starts at 0 and is moved by the adjust-relative-base
instruction. Parameters that an instruction writes to are never immediate.

After an instruction runs, the program counter moves past it and its
parameters, unless the instruction jumped. See ops.go for the full table.

Section 3: suspension

A Runtime never performs any I/O itself. Instead it suspends at exactly two
points, returning control to its caller:
- when an input instruction needs a value: the caller must then Supply one
- just after an output instruction has emitted a value

Since every piece of execution state lives in plain Runtime fields, a single
host loop can drive any number of runtimes in turn, e.g. a feedback loop of
amplifiers each feeding its output into the next one's input (see package
amp), without any threads or blocking. Once a runtime halts it is Complete;
resuming it again is an error.
*/
package intcode
