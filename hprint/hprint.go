// Package hprint prints to the debugger host's terminal.
//
// The host streams are opened on first use. Printing never returns an error:
// if the host refuses to open a stream or a write fails, the functions panic.
// Use package hio directly for error handling.
package hprint

import (
	"fmt"
	"sync/atomic"

	"github.com/clktmr/semihosting/hio"
	"github.com/clktmr/semihosting/trap"
)

var std atomic.Pointer[hio.Registry]

// Default returns the registry used by the print functions. Unless replaced
// by SetDefault it crosses into the host via trap.Native. Its critical
// section is the default of hio.NewRegistry, which interrupt handlers don't
// wait for on noos.
func Default() *hio.Registry {
	if r := std.Load(); r != nil {
		return r
	}
	std.CompareAndSwap(nil, hio.NewRegistry(trap.Native, nil))
	return std.Load()
}

// SetDefault replaces the registry used by the print functions. Streams
// already opened by the previous registry are not carried over.
func SetDefault(r *hio.Registry) {
	std.Store(r)
}

func Print(s string)   { hstdout(s) }
func Println(s string) { hstdout(s + "\n") }

func Printf(format string, a ...any) { hstdout(fmt.Sprintf(format, a...)) }

func Eprint(s string)   { hstderr(s) }
func Eprintln(s string) { hstderr(s + "\n") }

func Eprintf(format string, a ...any) { hstderr(fmt.Sprintf(format, a...)) }

func hstdout(s string) {
	r := Default()
	h, err := r.EnsureStdout()
	if err == nil {
		_, err = hio.NewStream(r.Gateway(), h).WriteString(s)
	}
	if err != nil {
		fail("hstdout", err)
	}
}

func hstderr(s string) {
	r := Default()
	h, err := r.EnsureStderr()
	if err == nil {
		_, err = hio.NewStream(r.Gateway(), h).WriteString(s)
	}
	if err != nil {
		fail("hstderr", err)
	}
}

// PrintError is the value hprint panics with.
type PrintError struct {
	Stream string
	Err    error
}

func (e *PrintError) Error() string {
	return fmt.Sprintf("failed to print to %s: %v", e.Stream, e.Err)
}

func (e *PrintError) Unwrap() error { return e.Err }

//go:noinline
func fail(label string, err error) {
	panic(&PrintError{label, err})
}
