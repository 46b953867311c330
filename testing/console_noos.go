//go:build noos

package testing

import (
	"os"
	"syscall"

	"github.com/clktmr/semihosting/debug"
	"github.com/clktmr/semihosting/hio"
)

func setupConsole(r *hio.Registry) (err error) {
	if err = hio.Mount(r, "/dev/console"); err != nil {
		return
	}
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		return
	}
	os.Stderr = os.Stdout
	return
}

func exit(r *hio.Registry, code int) {
	debug.Exit(r.Gateway(), code)
}
