// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run runs a target program under a debugger or emulator with
// semihosting enabled and reports the outcome of the target's tests.
package run

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
	"golang.org/x/term"
)

const usageString = `Run a target with semihosting and scan its output for test results.

Usage: %s [flags] <command line>

Example:

	shgo run "qemu-system-arm -M lm3s6965evb -nographic -semihosting -kernel test.elf"

`

var (
	flags = flag.NewFlagSet("run", flag.ExitOnError)

	usePty  = flags.Bool("pty", term.IsTerminal(int(os.Stdout.Fd())), "run the command in a pseudo terminal")
	grace   = flags.Duration("grace", 500*time.Millisecond, "time to wait for remaining output after the result")
	timeout = flags.Duration("timeout", 0, "stop the command if no result was seen after this time")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "run")
	flags.PrintDefaults()
}

// Result is the outcome reported by the target.
type Result int

const (
	Pending Result = iota
	Pass
	Fail
)

// Classify returns the result a line of target output reports.
func Classify(line string) Result {
	switch {
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return Fail
	case strings.HasPrefix(line, "failed to print to "):
		return Fail
	case line == "FAIL":
		return Fail
	case line == "PASS":
		return Pass
	}
	return Pending
}

// Scan logs every line read from r and calls done once with the first result
// found. It returns the result, or Pending if r ended without one.
func Scan(r io.Reader, logger *log.Logger, done func(Result)) Result {
	scanner := bufio.NewScanner(r)
	result := Pending
	for scanner.Scan() {
		// Terminals deliver CRLF line endings.
		line := strings.TrimSuffix(scanner.Text(), "\r")
		logger.Println(line)
		if result != Pending {
			continue
		}
		if result = Classify(line); result != Pending && done != nil {
			done(result)
		}
	}
	return result
}

// ExitCode maps a result to the process exit code.
func (r Result) ExitCode() int {
	if r == Pass {
		return 0
	}
	return 1
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	cmdline, err := shellwords.Split(flags.Arg(0))
	if err != nil {
		log.Fatalln("run:", err)
	}
	if len(cmdline) == 0 {
		log.Fatalln("run: empty command")
	}

	var p process
	if *usePty {
		p, err = startPty(cmdline)
	} else {
		p, err = startPipe(cmdline)
	}
	if err != nil {
		log.Fatalln("start command:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	go func() {
		<-sigintr
		p.stop()
	}()
	if *timeout > 0 {
		time.AfterFunc(*timeout, func() {
			log.Println("run: timeout")
			p.stop()
		})
	}

	result := Scan(p.output(), log.Default(), func(Result) {
		// give panic() time to print the stacktrace
		time.AfterFunc(*grace, p.stop)
	})
	p.wait()
	os.Exit(result.ExitCode())
}

type process interface {
	output() io.Reader
	stop()
	wait()
}

type pipeProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

func startPipe(cmdline []string) (*pipeProcess, error) {
	cmd := exec.Command(cmdline[0], cmdline[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	ownGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err = cmd.Start(); err != nil {
		return nil, err
	}
	return &pipeProcess{cmd, stdout}, nil
}

func (p *pipeProcess) output() io.Reader { return p.stdout }

func (p *pipeProcess) stop() {
	p.stdout.Close()
	if err := interruptGroup(p.cmd); err != nil {
		log.Println(err)
	}
}

func (p *pipeProcess) wait() { p.cmd.Wait() }

// ptyProcess runs the command in a pseudo terminal. Debuggers print
// semihosting output unbuffered only if they are attached to a terminal.
type ptyProcess struct {
	pty pty.Pty
	cmd *pty.Cmd
}

func startPty(cmdline []string) (*ptyProcess, error) {
	p, err := pty.New()
	if err != nil {
		return nil, err
	}
	cmd := p.Command(cmdline[0], cmdline[1:]...)
	if err = cmd.Start(); err != nil {
		p.Close()
		return nil, err
	}
	return &ptyProcess{p, cmd}, nil
}

func (p *ptyProcess) output() io.Reader { return p.pty }

func (p *ptyProcess) stop() {
	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		log.Println(err)
	}
}

func (p *ptyProcess) wait() {
	p.cmd.Wait()
	p.pty.Close()
}
