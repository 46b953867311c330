//go:build !debug

// Package debug provides assertions enabled by the debug build tag and the
// semihosting operations for ending a debug session.
//
// Assertions compile to no-ops in release builds. This is not considered
// idiomatic Go, but an invariant violation in code that talks to a debugger
// is better caught while the debugger is still attached.
package debug

// Enabled reports whether assertions are compiled in. Guard expensive checks
// with `if debug.Enabled {...}` so release builds drop them.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}
