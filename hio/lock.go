package hio

// irqLocker is a critical section for code shared between thread mode and
// interrupt handlers. Thread mode callers are serialized and mask interrupts
// while holding it. Handlers never wait for it: the code they preempted
// can't release it before they return.
type irqLocker struct {
	mtx     mutex
	handler func() bool
	mask    func() (unmask func())
	unmask  func()
}

func (l *irqLocker) Lock() {
	if l.handler() {
		return
	}
	l.mtx.Lock()
	l.unmask = l.mask()
}

func (l *irqLocker) Unlock() {
	if l.handler() {
		return
	}
	unmask := l.unmask
	l.unmask = nil
	unmask()
	l.mtx.Unlock()
}
