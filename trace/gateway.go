package trace

import (
	"io"

	"github.com/clktmr/semihosting/trap"
)

// Gateway forwards crossings to another gateway and records each of them.
// Recording errors don't affect the crossing, see Err.
type Gateway struct {
	g trap.Gateway

	mtx mutex
	w   io.Writer
	err error
}

// New returns a Gateway forwarding to g and recording to w.
func New(g trap.Gateway, w io.Writer) *Gateway {
	return &Gateway{g: g, w: w}
}

// Map forwards buffer registration to the wrapped gateway, so recorded words
// are the ones the wrapped gateway sees.
func (t *Gateway) Map(p []byte) uintptr {
	return trap.Map(t.g, p)
}

func (t *Gateway) Syscall1(op trap.Op, arg uintptr) uintptr {
	res := t.g.Syscall1(op, arg)
	t.record(Record{ShapeWord, op, []uintptr{arg}, res})
	return res
}

func (t *Gateway) Syscall(op trap.Op, args []uintptr) uintptr {
	res := t.g.Syscall(op, args)
	t.record(Record{ShapeBlock, op, args, res})
	return res
}

// Err returns the first error that occurred while recording.
func (t *Gateway) Err() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.err
}

func (t *Gateway) record(r Record) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.err != nil {
		return
	}
	t.err = WriteRecord(t.w, r)
}
