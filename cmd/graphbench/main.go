// Command graphbench generates benchmark graph instances and aggregates the
// result records that solvers leave behind.
//
//	graphbench generate <TYPE> <PAR1> [<PAR2>] [--seed N] [--format edgelist|graph6|dot]
//	graphbench aggregate [<resultsRoot> [<inputsRoot>]] [--strict]
//
// Data goes to stdout, diagnostics to stderr. The exit code is 1 on any
// fatal error.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.logger().Error("graphbench failed", "err", err)
		return 1
	}

	return 0
}
