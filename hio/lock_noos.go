//go:build noos

package hio

import (
	"embedded/rtos"
	"sync"
)

// NewIRQLocker returns a critical section which disables irqs while it's
// held by thread mode code. Pass the interrupts whose handlers print to the
// host, so they can't observe a stream halfway opened.
func NewIRQLocker(irqs ...rtos.IRQ) sync.Locker {
	return &irqLocker{
		handler: rtos.HandlerMode,
		mask:    func() func() { return disable(irqs) },
	}
}

func disable(irqs []rtos.IRQ) (restore func()) {
	type state struct {
		irq  rtos.IRQ
		prio int
	}
	enabled := make([]state, 0, len(irqs))
	for _, irq := range irqs {
		en, prio, _ := irq.Status(0)
		irq.Disable(0)
		if en {
			enabled = append(enabled, state{irq, prio})
		}
	}
	return func() {
		for _, s := range enabled {
			s.irq.Enable(s.prio, 0)
		}
	}
}

func defaultLocker() sync.Locker {
	return NewIRQLocker()
}
