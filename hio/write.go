package hio

import (
	"github.com/clktmr/semihosting/trap"
)

// WriteAll writes p to the host stream h. It returns only after the host
// accepted every byte or an error occurred. Negative handles fail with
// ErrInvalidHandle without crossing into the host.
func WriteAll(g trap.Gateway, h Handle, p []byte) error {
	if h < 0 {
		return &WriteError{h, ErrInvalidHandle}
	}

	var pin trap.Pinner
	defer pin.Unpin()

	for len(p) > 0 {
		// The host returns the number of bytes it didn't write. These
		// are always the tail of the buffer passed in.
		n := trap.Call(g, trap.Write, trap.Word(h), trap.Buffer(g, &pin, p), trap.Word(len(p)))
		switch {
		case n == 0:
			return nil
		case n <= uintptr(len(p)):
			p = p[len(p)-int(n):]
		default:
			return &WriteError{h, ErrHostError}
		}
	}

	return nil
}
