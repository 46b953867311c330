// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package run

import (
	"errors"
	"os"
	"os/exec"
)

// ownGroup is a no-op. Only the target command itself is interrupted.
func ownGroup(cmd *exec.Cmd) {}

func interruptGroup(cmd *exec.Cmd) error {
	err := cmd.Process.Signal(os.Interrupt)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
