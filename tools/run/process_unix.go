// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package run

import (
	"errors"
	"os/exec"
	"syscall"
)

// ownGroup starts the target command in a new process group. Debuggers
// spawn emulators or gdb servers, which must be interrupted with them.
func ownGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = new(syscall.SysProcAttr)
	}
	cmd.SysProcAttr.Setpgid = true
}

// interruptGroup sends SIGINT to every process in the group of cmd. A group
// which is already gone isn't an error.
func interruptGroup(cmd *exec.Cmd) error {
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGINT)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}
	return err
}
