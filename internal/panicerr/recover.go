// Package panicerr isolates a unit of host work so that a panic, or a
// runtime.Goexit, inside it comes back as an ordinary error instead of
// tearing down the caller.
package panicerr

import "runtime/debug"

// Recover runs f in a new goroutine, waiting for it to finish, and converts
// any panic or runtime.Goexit into an Error. The name labels that error.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			e := Error{Name: name, Value: recover()}
			if e.Value != nil {
				e.Stack = debug.Stack()
			} else {
				e.Exit = true
			}
			select {
			case errch <- e:
			default:
				// f returned normally
			}
		}()
		errch <- f()
	}()
	return <-errch
}
