//go:build debug

package debug

// Enabled reports whether assertions are compiled in. Guard expensive checks
// with `if debug.Enabled {...}` so release builds drop them.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic("assertion failed: " + message)
	}
}
