// Package host simulates the debugger side of semihosting.
//
// A Host is a trap.Gateway which serves operations from memory instead of
// trapping into a debugger. It serves the terminal streams ":tt" and is meant
// for running target code in tests and on the development machine.
//
// The Host doesn't dereference addresses. It's a trap.Mapper: buffers are
// registered under made up words, which are looked up when they appear in a
// crossing.
package host

import (
	"bytes"
	"io"
	"math"
	"time"

	sync "github.com/sasha-s/go-deadlock"

	"github.com/clktmr/semihosting/debug"
	"github.com/clktmr/semihosting/trap"
)

// Errno values reported by SYS_ERRNO.
const (
	ENOENT = 2
	EBADF  = 9
	EINVAL = 22
)

const failed = ^uintptr(0)

// Buffer words start high enough to not be mistaken for small arguments.
const firstBuffer = 0x10000

type file struct {
	r   io.Reader
	w   io.Writer
	tty bool
}

// Host serves semihosting operations. Handles are assigned starting at 1.
type Host struct {
	// MaxChunk limits the number of bytes accepted by a single WRITE. The
	// remaining bytes are reported as not written. Zero means no limit.
	MaxChunk int

	mtx    sync.Mutex
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	files  map[uintptr]*file
	next   uintptr
	bufs   map[uintptr][]byte
	word   uintptr
	calls  map[trap.Op]int
	errno  int
	start  time.Time

	exited   bool
	reason   debug.Reason
	exitCode int
}

// New returns a Host connecting the terminal to the given streams. Any of
// them may be nil, in which case opening it fails.
func New(stdin io.Reader, stdout, stderr io.Writer) *Host {
	return &Host{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		files:  make(map[uintptr]*file),
		next:   1,
		bufs:   make(map[uintptr][]byte),
		word:   firstBuffer,
		calls:  make(map[trap.Op]int),
		start:  time.Now(),
	}
}

// Calls returns how often op was issued.
func (h *Host) Calls(op trap.Op) int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.calls[op]
}

// Exited returns the reason and code the target exited with, if it did.
func (h *Host) Exited() (reason debug.Reason, code int, ok bool) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.reason, h.exitCode, h.exited
}

// Map registers p for the next crossing which refers to it and returns the
// word to pass as its address.
func (h *Host) Map(p []byte) uintptr {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	w := h.word
	h.word += uintptr(max(len(p), 1))
	h.bufs[w] = p
	return w
}

// Buffers returns the number of registered buffers not yet used by a
// crossing.
func (h *Host) Buffers() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return len(h.bufs)
}

// buffer returns up to n bytes of the buffer registered under w. Every
// registration is used by a single crossing. Unknown words resolve to nil,
// which is only valid for empty buffers.
func (h *Host) buffer(w uintptr, n int) ([]byte, bool) {
	p, ok := h.bufs[w]
	if !ok || n < 0 {
		return nil, w == 0 && n == 0
	}
	delete(h.bufs, w)
	return p[:min(n, len(p))], true
}

func (h *Host) cstring(w uintptr) []byte {
	p, _ := h.buffer(w, math.MaxInt)
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return p[:i]
	}
	return p
}

func (h *Host) Syscall1(op trap.Op, arg uintptr) uintptr {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.calls[op]++

	switch op {
	case trap.WriteC:
		p, _ := h.buffer(arg, 1)
		h.terminal(p)
		return 0
	case trap.Write0:
		h.terminal(h.cstring(arg))
		return 0
	case trap.Clock:
		return uintptr(time.Since(h.start) / (10 * time.Millisecond))
	case trap.Errno:
		return uintptr(h.errno)
	case trap.Exit:
		h.exit(debug.Reason(arg), 0)
		return 0
	}
	h.errno = EINVAL
	return failed
}

func (h *Host) Syscall(op trap.Op, args []uintptr) uintptr {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.calls[op]++

	switch {
	case op == trap.Open && len(args) == 3:
		path, ok := h.buffer(args[0], int(args[2]))
		if !ok {
			break
		}
		return h.open(string(path), trap.Mode(args[1]))
	case op == trap.Close && len(args) == 1:
		if _, ok := h.files[args[0]]; !ok {
			h.errno = EBADF
			return failed
		}
		delete(h.files, args[0])
		return 0
	case op == trap.Write && len(args) == 3:
		p, ok := h.buffer(args[1], int(args[2]))
		if !ok {
			break
		}
		return h.write(args[0], p)
	case op == trap.Read && len(args) == 3:
		p, ok := h.buffer(args[1], int(args[2]))
		if !ok {
			break
		}
		return h.read(args[0], p)
	case op == trap.IsTTY && len(args) == 1:
		if f, ok := h.files[args[0]]; ok && f.tty {
			return 1
		}
		return 0
	case (op == trap.Exit || op == trap.ExitExtended) && len(args) == 2:
		h.exit(debug.Reason(args[0]), int(args[1]))
		return 0
	}
	h.errno = EINVAL
	return failed
}

func (h *Host) open(path string, mode trap.Mode) uintptr {
	if path != trap.TTY {
		h.errno = ENOENT
		return failed
	}

	f := &file{tty: true}
	switch {
	case mode < trap.ModeW:
		f.r = h.stdin
	case mode < trap.ModeA:
		f.w = h.stdout
	case mode <= trap.ModeAPlusB:
		f.w = h.stderr
	default:
		h.errno = EINVAL
		return failed
	}
	if f.r == nil && f.w == nil {
		h.errno = ENOENT
		return failed
	}

	fd := h.next
	h.next++
	h.files[fd] = f
	return fd
}

func (h *Host) write(fd uintptr, p []byte) uintptr {
	f, ok := h.files[fd]
	if !ok || f.w == nil {
		h.errno = EBADF
		return failed
	}
	n := len(p)
	if h.MaxChunk > 0 {
		n = min(n, h.MaxChunk)
	}
	n, err := f.w.Write(p[:n])
	debug.Assert(n <= len(p), "writer accepted more than requested")
	if err != nil && n == 0 {
		h.errno = EINVAL
		return failed
	}
	return uintptr(len(p) - n)
}

func (h *Host) read(fd uintptr, p []byte) uintptr {
	f, ok := h.files[fd]
	if !ok || f.r == nil {
		h.errno = EBADF
		return failed
	}
	n, err := f.r.Read(p)
	if err != nil && err != io.EOF {
		h.errno = EINVAL
		return failed
	}
	return uintptr(len(p) - n)
}

func (h *Host) terminal(p []byte) {
	if h.stdout != nil {
		h.stdout.Write(p)
	}
}

func (h *Host) exit(reason debug.Reason, code int) {
	h.exited = true
	h.reason = reason
	h.exitCode = code
}
