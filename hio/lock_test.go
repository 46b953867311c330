package hio

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/clktmr/semihosting/trap"
)

// irqs fakes an interrupt controller with a single interrupt.
type irqs struct {
	handlerMode bool
	enabled     bool
	masks       int
}

func (i *irqs) locker() *irqLocker {
	return &irqLocker{
		handler: func() bool { return i.handlerMode },
		mask: func() func() {
			i.masks++
			en := i.enabled
			i.enabled = false
			return func() { i.enabled = en }
		},
	}
}

func TestIRQLockerMasks(t *testing.T) {
	c := qt.New(t)
	i := &irqs{enabled: true}
	l := i.locker()

	l.Lock()
	c.Assert(i.enabled, qt.IsFalse)
	l.Unlock()
	c.Assert(i.enabled, qt.IsTrue)

	// Interrupts disabled before stay disabled.
	i.enabled = false
	l.Lock()
	l.Unlock()
	c.Assert(i.enabled, qt.IsFalse)
	c.Assert(i.masks, qt.Equals, 2)
}

func TestIRQLockerHandlerMode(t *testing.T) {
	c := qt.New(t)
	i := &irqs{enabled: true}
	l := i.locker()

	l.Lock()

	// A handler preempting the holder must not wait for it.
	i.handlerMode = true
	l.Lock()
	l.Unlock()
	i.handlerMode = false
	c.Assert(i.enabled, qt.IsFalse)
	c.Assert(i.masks, qt.Equals, 1)

	l.Unlock()
	c.Assert(i.enabled, qt.IsTrue)
}

type openCounter struct{ opens int }

func (o *openCounter) Syscall1(op trap.Op, arg uintptr) uintptr { return 0 }

func (o *openCounter) Syscall(op trap.Op, args []uintptr) uintptr {
	if op == trap.Open {
		o.opens++
		return trap.Word(o.opens)
	}
	return 0
}

func TestRegistryIRQLocker(t *testing.T) {
	c := qt.New(t)
	i := &irqs{enabled: true}
	g := &openCounter{}
	r := NewRegistry(g, i.locker())

	h, err := r.EnsureStdout()
	c.Assert(err, qt.IsNil)
	c.Assert(h, qt.Equals, Handle(1))
	c.Assert(i.enabled, qt.IsTrue)

	i.handlerMode = true
	h, err = r.EnsureStdout()
	c.Assert(err, qt.IsNil)
	c.Assert(h, qt.Equals, Handle(1))
	c.Assert(g.opens, qt.Equals, 1)
	c.Assert(i.masks, qt.Equals, 1)
}

func TestDefaultLocker(t *testing.T) {
	r := NewRegistry(&openCounter{}, nil)
	if r.cs == nil {
		t.Fatal("expected a default critical section")
	}
}
