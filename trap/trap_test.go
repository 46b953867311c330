package trap_test

import (
	"testing"
	"unsafe"

	qt "github.com/frankban/quicktest"

	"github.com/clktmr/semihosting/trap"
)

type call struct {
	Op    trap.Op
	Word  uintptr
	Block []uintptr
}

type recorder struct{ calls []call }

func (r *recorder) Syscall1(op trap.Op, arg uintptr) uintptr {
	r.calls = append(r.calls, call{Op: op, Word: arg})
	return 0
}

func (r *recorder) Syscall(op trap.Op, args []uintptr) uintptr {
	r.calls = append(r.calls, call{Op: op, Block: append([]uintptr(nil), args...)})
	return uintptr(len(args))
}

func TestCallShapes(t *testing.T) {
	c := qt.New(t)
	r := &recorder{}

	c.Assert(trap.Call(r, trap.Clock), qt.Equals, uintptr(0))
	c.Assert(trap.Call(r, trap.Close, 7), qt.Equals, uintptr(1))
	c.Assert(trap.Call(r, trap.Write, 1, 0x1000, 14), qt.Equals, uintptr(3))

	c.Assert(r.calls, qt.DeepEquals, []call{
		{Op: trap.Clock},
		{Op: trap.Close, Block: []uintptr{7}},
		{Op: trap.Write, Block: []uintptr{1, 0x1000, 14}},
	})
}

func TestWord(t *testing.T) {
	c := qt.New(t)
	c.Assert(trap.Word(-1), qt.Equals, ^uintptr(0))
	c.Assert(trap.Word(uint8(0xab)), qt.Equals, uintptr(0xab))
	c.Assert(trap.Signed(trap.Word(int32(-42))), qt.Equals, -42)
}

func TestOpString(t *testing.T) {
	tests := map[trap.Op]string{
		trap.Open:  "SYS_OPEN",
		trap.Write: "SYS_WRITE",
		trap.Exit:  "SYS_EXIT",
		0x7f:       "SYS_UNKNOWN",
	}
	for op, expected := range tests {
		if got := op.String(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}
}

func TestBufferAddress(t *testing.T) {
	c := qt.New(t)
	var pin trap.Pinner
	defer pin.Unpin()

	p := []byte("Hello, world!\n")
	addr := trap.Buffer(&recorder{}, &pin, p)
	c.Assert(addr, qt.Equals, uintptr(unsafe.Pointer(&p[0])))
	c.Assert(trap.Buffer(&recorder{}, &pin, nil), qt.Equals, uintptr(0))
	c.Assert(trap.String(&recorder{}, &pin, ""), qt.Equals, uintptr(0))
}

// mapper hands out consecutive words instead of addresses.
type mapper struct {
	recorder
	mapped [][]byte
}

func (m *mapper) Map(p []byte) uintptr {
	m.mapped = append(m.mapped, p)
	return uintptr(len(m.mapped))
}

func TestBufferMapped(t *testing.T) {
	c := qt.New(t)
	var pin trap.Pinner
	defer pin.Unpin()

	m := &mapper{}
	c.Assert(trap.String(m, &pin, trap.TTY+"\x00"), qt.Equals, uintptr(1))
	c.Assert(trap.Buffer(m, &pin, []byte("abc")), qt.Equals, uintptr(2))
	c.Assert(trap.Buffer(m, &pin, nil), qt.Equals, uintptr(0))
	c.Assert(m.mapped, qt.HasLen, 2)
	c.Assert(string(m.mapped[0]), qt.Equals, ":tt\x00")
	c.Assert(string(m.mapped[1]), qt.Equals, "abc")
}
