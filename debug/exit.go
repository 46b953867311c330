package debug

import (
	"unsafe"

	"github.com/clktmr/semihosting/trap"
)

// Reason tells the debugger why the target stopped.
type Reason uintptr

// ADP stop reasons
const (
	BranchThroughZero   Reason = 0x20000
	UndefinedInstr      Reason = 0x20001
	SoftwareInterrupt   Reason = 0x20002
	PrefetchAbort       Reason = 0x20003
	DataAbort           Reason = 0x20004
	AddressException    Reason = 0x20005
	IRQ                 Reason = 0x20006
	FIQ                 Reason = 0x20007
	BreakPoint          Reason = 0x20020
	WatchPoint          Reason = 0x20021
	StepComplete        Reason = 0x20022
	RunTimeErrorUnknown Reason = 0x20023
	InternalError       Reason = 0x20024
	UserInterruption    Reason = 0x20025
	ApplicationExit     Reason = 0x20026
	StackOverflow       Reason = 0x20027
	DivisionByZero      Reason = 0x20028
	OSSpecific          Reason = 0x20029
)

const wide = unsafe.Sizeof(uintptr(0)) == 8

// Report stops the target with reason. Most debuggers end the session,
// others just halt the target.
func Report(g trap.Gateway, reason Reason) {
	if wide {
		trap.Call(g, trap.Exit, uintptr(reason), 0)
		return
	}
	g.Syscall1(trap.Exit, uintptr(reason))
}

// Exit ends the debug session with an exit code. A zero code is reported as
// plain ApplicationExit. Other codes are passed with ApplicationExit in an
// argument block: SYS_EXIT takes one on 64-bit targets, 32-bit targets use
// SYS_EXIT_EXTENDED.
func Exit(g trap.Gateway, code int) {
	switch {
	case code == 0:
		Report(g, ApplicationExit)
	case wide:
		trap.Call(g, trap.Exit, uintptr(ApplicationExit), trap.Word(code))
	default:
		trap.Call(g, trap.ExitExtended, uintptr(ApplicationExit), trap.Word(code))
	}
}
