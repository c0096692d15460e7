package panicerr

import "fmt"

// Error is returned by Recover when the isolated function did not return on
// its own. Exactly one of Exit or Value is set.
type Error struct {
	Name string

	// Exit is true if the goroutine called runtime.Goexit.
	Exit bool

	// Value and Stack hold the recovered panic value and where it came from.
	Value interface{}
	Stack []byte
}

func (e Error) Error() string { return fmt.Sprint(e) }

// Format prints the panic stack after the message under %+v.
func (e Error) Format(f fmt.State, c rune) {
	what := fmt.Sprintf("paniced: %v", e.Value)
	if e.Exit {
		what = "called runtime.Goexit"
	}
	switch {
	case e.Name != "":
		fmt.Fprintf(f, "%v %v", e.Name, what)
	case e.Exit:
		fmt.Fprint(f, "runtime.Goexit called")
	default:
		fmt.Fprint(f, what)
	}
	if c == 'v' && f.Flag('+') && len(e.Stack) > 0 {
		fmt.Fprintf(f, "\nPanic stack: %s", e.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (e Error) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
