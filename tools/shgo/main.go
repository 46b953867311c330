package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/semihosting/tools/dump"
	"github.com/clktmr/semihosting/tools/run"
)

const usageString = `shgo is a tool for running targets with semihosting.

Usage:

	%s <command> [arguments]

The commands are:

	run      run a target under a debugger and collect its test results
	dump     print a recorded semihosting trace
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "run":
		run.Main(flag.Args())
	case "dump":
		dump.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
