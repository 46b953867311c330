// Package dump prints semihosting traces recorded by package trace.
package dump

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/clktmr/semihosting/trace"
)

const usageString = `Print a semihosting trace.

Usage: %s [flags] <tracefile>

`

var (
	flags = flag.NewFlagSet("dump", flag.ExitOnError)

	summary = flags.Bool("count", false, "print the number of crossings per operation instead")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "dump")
	flags.PrintDefaults()
}

// Dump writes one line per record read from r to w. With count set it
// writes a summary per operation instead.
func Dump(w io.Writer, r io.Reader, count bool) error {
	d := trace.NewReader(r)
	counts := make(map[string]int)
	var order []string
	for i := 0; ; i++ {
		rec, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if !count {
			fmt.Fprintf(w, "%6d %v\n", i, rec)
			continue
		}
		name := rec.Op.String()
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, name := range order {
		fmt.Fprintf(w, "%-18s %d\n", name, counts[name])
	}
	return nil
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	if err = Dump(os.Stdout, f, *summary); err != nil {
		log.Fatalln("dump:", err)
	}
}
