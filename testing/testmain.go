// Package testing provides a TestMain for tests running on a target. The test
// output is printed on the debugger host and the exit code is passed on to the
// debugger, so `shgo run` can collect the result.
package testing

import (
	"os"
	"testing"

	"github.com/clktmr/semihosting/hprint"
)

// TestMain should be used as TestMain for tests running on a target.
func TestMain(m *testing.M) {
	r := hprint.Default()
	if err := setupConsole(r); err != nil {
		hprint.Eprintf("no host console: %v\n", err)
	}

	os.Args = append(os.Args, "-test.v")

	code := m.Run()
	exit(r, code)
	os.Exit(code)
}
