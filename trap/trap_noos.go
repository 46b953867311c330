//go:build noos && (arm || arm64 || riscv64 || thumb)

package trap

// Implemented in assembly. Returns the host's result word.
//
//go:noescape
func trap(op, arg uintptr) uintptr
