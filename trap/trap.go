// Package trap implements the crossing from the target into the debugger
// host.
//
// Every semihosting operation is a single trap instruction with an operation
// number in the first argument register and either a word or the address of
// an argument block in the second. The host writes its result back into the
// first register. See 'Chapter 8 - Semihosting' of the ARM Compiler toolchain
// manual for the operations and their argument blocks.
package trap

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Gateway performs host crossings. Implementations must perform exactly one
// crossing per call and never fail themselves: errors are expressed in the
// operation specific meaning of the returned word.
type Gateway interface {
	// Syscall1 passes arg in the argument register unchanged.
	Syscall1(op Op, arg uintptr) uintptr

	// Syscall passes the address of the argument block args.
	Syscall(op Op, args []uintptr) uintptr
}

// Call issues op with a variable number of word arguments. Without arguments
// a zero word is passed, otherwise the arguments are passed as block.
func Call(g Gateway, op Op, args ...uintptr) uintptr {
	if len(args) == 0 {
		return g.Syscall1(op, 0)
	}
	return g.Syscall(op, args)
}

// Word converts an integer argument into an argument block word. Negative
// values are sign extended.
func Word[T constraints.Integer](v T) uintptr {
	return uintptr(v)
}

// Signed interprets a result word as signed integer.
func Signed(result uintptr) int {
	return int(result)
}

// Native is the Gateway backed by the target's trap instruction.
var Native Gateway = native{}

type native struct{}

func (native) Syscall1(op Op, arg uintptr) uintptr {
	return trap(uintptr(op), arg)
}

func (native) Syscall(op Op, args []uintptr) uintptr {
	if len(args) == 0 {
		return trap(uintptr(op), 0)
	}
	return trap(uintptr(op), uintptr(unsafe.Pointer(unsafe.SliceData(args))))
}
