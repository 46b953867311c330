package hio

import (
	"io"
	"unsafe"

	"github.com/clktmr/semihosting/trap"
)

// Stream writes to an open host stream.
type Stream struct {
	g trap.Gateway
	h Handle
}

// NewStream returns a Stream writing to h via g.
func NewStream(g trap.Gateway, h Handle) Stream { return Stream{g, h} }

func (s Stream) Handle() Handle { return s.h }

// Write implements io.Writer. It either writes all of p or fails with n == 0.
func (s Stream) Write(p []byte) (n int, err error) {
	if err = WriteAll(s.g, s.h, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s Stream) WriteString(str string) (n int, err error) {
	return s.Write(unsafe.Slice(unsafe.StringData(str), len(str)))
}

// File is a host file opened with Registry.Open.
type File struct {
	Stream
	path string
}

// Open opens path on the host. Unlike the standard streams the file must be
// closed by the caller.
func (r *Registry) Open(path string, mode trap.Mode) (*File, error) {
	h := r.open(path, mode)
	if h < 0 {
		return nil, &StreamError{path, h, ErrOpenFailed}
	}
	return &File{Stream{r.g, h}, path}, nil
}

func (f *File) Name() string { return f.path }

func (f *File) Close() error {
	if f.h < 0 {
		return &WriteError{f.h, ErrInvalidHandle}
	}
	if trap.Signed(trap.Call(f.g, trap.Close, trap.Word(f.h))) != 0 {
		return &StreamError{f.path, f.h, ErrHostError}
	}
	f.h = Unset
	return nil
}

// lazyStream opens its stream on the first write.
type lazyStream struct {
	r      *Registry
	ensure func() (Handle, error)
}

func (w lazyStream) Write(p []byte) (n int, err error) {
	h, err := w.ensure()
	if err != nil {
		return 0, err
	}
	return Stream{w.r.g, h}.Write(p)
}

// StdoutWriter returns a writer to the host's stdout which opens the stream
// on first use.
func (r *Registry) StdoutWriter() io.Writer { return lazyStream{r, r.EnsureStdout} }

// StderrWriter returns a writer to the host's stderr which opens the stream
// on first use.
func (r *Registry) StderrWriter() io.Writer { return lazyStream{r, r.EnsureStderr} }
