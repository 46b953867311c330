// Package hio implements the host's standard streams for a target without an
// operating system.
//
// The streams are opened on the host by passing the special path ":tt" to
// SYS_OPEN. A Registry opens each of them at most once and keeps the returned
// handles for the lifetime of the program. Handles are never closed.
package hio

import (
	"sync"
	"sync/atomic"

	"github.com/clktmr/semihosting/trap"
)

// Handle identifies an open host stream. Negative values are invalid.
type Handle int

// Unset is returned for streams which weren't opened yet. It's also what the
// host returns if opening failed.
const Unset Handle = -1

// Registry owns the handles of the host's stdout and stderr.
//
// The handle slots are read without locking. The check and open sequence in
// EnsureStdout and EnsureStderr runs inside a critical section, which
// prevents two callers from opening the same stream twice. On targets where
// interrupt handlers print, the critical section must mask interrupts.
type Registry struct {
	g  trap.Gateway
	cs sync.Locker

	stdout, stderr slot
}

type slot struct {
	name   string
	mode   trap.Mode
	handle atomic.Uintptr
	tried  atomic.Bool
}

func (s *slot) load() Handle {
	return Handle(int(s.handle.Load()))
}

// NewRegistry returns a Registry opening streams via g. Pass a locker which
// disables interrupts as cs if streams are used from interrupt handlers, see
// NewIRQLocker. If cs is nil, a mutex is used on hosted builds. On noos it's
// a critical section which interrupt handlers don't wait for.
func NewRegistry(g trap.Gateway, cs sync.Locker) *Registry {
	if cs == nil {
		cs = defaultLocker()
	}
	r := &Registry{g: g, cs: cs}
	r.stdout.name, r.stdout.mode = "hstdout", trap.ModeW
	r.stderr.name, r.stderr.mode = "hstderr", trap.ModeA
	r.stdout.handle.Store(trap.Word(Unset))
	r.stderr.handle.Store(trap.Word(Unset))
	return r
}

// Gateway returns the gateway the registry uses for host crossings.
func (r *Registry) Gateway() trap.Gateway { return r.g }

// OpenStreams opens stdout and stderr on the host. Both handles are stored
// even if opening one of them failed. Streams which were already opened
// aren't opened again.
func (r *Registry) OpenStreams() error {
	_, errOut := r.ensure(&r.stdout)
	_, errErr := r.ensure(&r.stderr)
	if errOut != nil {
		return errOut
	}
	return errErr
}

// Stdout returns the handle of the host's stdout, or Unset.
func (r *Registry) Stdout() Handle { return r.stdout.load() }

// Stderr returns the handle of the host's stderr, or Unset.
func (r *Registry) Stderr() Handle { return r.stderr.load() }

// EnsureStdout opens the host's stdout on first use and returns its handle.
func (r *Registry) EnsureStdout() (Handle, error) { return r.ensure(&r.stdout) }

// EnsureStderr opens the host's stderr on first use and returns its handle.
func (r *Registry) EnsureStderr() (Handle, error) { return r.ensure(&r.stderr) }

func (r *Registry) ensure(s *slot) (Handle, error) {
	h := r.once(s)
	if h < 0 {
		return h, &StreamError{s.name, h, ErrOpenFailed}
	}
	return h, nil
}

// once opens s unless that was already tried. Only the check, the open and
// the store are inside the critical section.
func (r *Registry) once(s *slot) Handle {
	r.cs.Lock()
	defer r.cs.Unlock()

	if s.tried.Load() {
		return s.load()
	}
	h := r.open(trap.TTY, s.mode)
	s.handle.Store(trap.Word(h))
	s.tried.Store(true)
	return h
}

// The host expects a NUL terminated path, but without the NUL in the length.
const ttyPath = trap.TTY + "\x00"

func (r *Registry) open(path string, mode trap.Mode) Handle {
	var pin trap.Pinner
	defer pin.Unpin()

	var addr uintptr
	if path == trap.TTY {
		addr = trap.String(r.g, &pin, ttyPath)
	} else {
		cpath := make([]byte, len(path)+1)
		copy(cpath, path)
		addr = trap.Buffer(r.g, &pin, cpath)
	}
	h := trap.Call(r.g, trap.Open, addr, uintptr(mode), trap.Word(len(path)))
	return Handle(trap.Signed(h))
}
