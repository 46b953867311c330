//go:build noos

package hio

import (
	"embedded/rtos"

	"github.com/embeddedgo/fs/termfs"
)

// Mount makes the host's terminal available as file name, e.g.
// "/dev/console", so that os.Stdout can be redirected to it.
func Mount(r *Registry, name string) error {
	fs := termfs.NewLight("hostfs", nil, r.StdoutWriter())
	return rtos.Mount(fs, name)
}
