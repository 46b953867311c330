package hio

// SystemWriter is the signature of an embedded runtime's system writer hook,
// which receives everything written by print(), println() and panic().
type SystemWriter func(fd int, p []byte) int

// NewSystemWriter returns a SystemWriter forwarding fd 1 to the host's stdout
// and fd 2 to its stderr. Other file descriptors are dropped. Returns the
// number of bytes written, which is either len(p) or zero.
func NewSystemWriter(r *Registry) SystemWriter {
	return func(fd int, p []byte) int {
		var h Handle
		var err error
		switch fd {
		case 1:
			h, err = r.EnsureStdout()
		case 2:
			h, err = r.EnsureStderr()
		default:
			return 0
		}
		if err != nil {
			return 0
		}
		if WriteAll(r.g, h, p) != nil {
			return 0
		}
		return len(p)
	}
}
