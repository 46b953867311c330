package trap

import (
	"runtime"
	"slices"
	"unsafe"
)

// Pinner keeps buffers referenced from an argument block in place while the
// host accesses them. Argument blocks carry addresses as plain words, which
// the garbage collector doesn't track.
type Pinner struct {
	*pinner
}

type pinner struct {
	// The object is pinned by keeping a reference from heap to it. This
	// will also enforce it to escape, since only pointers on the stack can
	// point into the stack. The stack might be moved while the address is
	// stored as word only.
	refs []unsafe.Pointer
}

type eface struct {
	_type, data unsafe.Pointer
}

func (p *Pinner) Pin(pointer any) {
	if p.pinner == nil {
		p.pinner = new(pinner)
		p.refs = make([]unsafe.Pointer, 0, 4)
		runtime.SetFinalizer(p.pinner, func(i *pinner) {
			if len(i.refs) != 0 {
				panic("trap.Pinner: memory leak")
			}
		})
	}
	itf := (*eface)(unsafe.Pointer(&pointer))
	if !slices.Contains(p.refs, itf.data) {
		p.refs = append(p.refs, itf.data)
	}
}

func (p *Pinner) Unpin() {
	if p.pinner == nil {
		return
	}
	clear(p.refs[:])
	p.refs = p.refs[:0]
}

// Mapper is implemented by gateways which don't share memory with the
// target, like simulators. Map returns a word the gateway resolves back to p
// when it appears in a later crossing.
type Mapper interface {
	Map(p []byte) uintptr
}

// Map returns the word to pass to g as address of p. The caller keeps p
// pinned.
func Map(g Gateway, p []byte) uintptr {
	if len(p) == 0 {
		return 0
	}
	if m, ok := g.(Mapper); ok {
		return m.Map(p)
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(p)))
}

// Buffer pins p and returns the word to pass to g as its address. Empty
// slices yield a zero word.
func Buffer(g Gateway, pin *Pinner, p []byte) uintptr {
	if len(p) == 0 {
		return 0
	}
	pin.Pin(unsafe.SliceData(p))
	return Map(g, p)
}

// String pins the bytes of s and returns the word to pass to g as their
// address. Gateways must not write to them.
func String(g Gateway, pin *Pinner, s string) uintptr {
	return Buffer(g, pin, unsafe.Slice(unsafe.StringData(s), len(s)))
}
