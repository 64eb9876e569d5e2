// Package main is the entry point for the emucfg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/emucfg/cmd/emucfg/commands"
	"github.com/thoreinstein/emucfg/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and its hints to stderr and returns the exit code.
func report(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	for _, h := range errors.Hints(err) {
		fmt.Fprintf(os.Stderr, "  %s\n", h)
	}
	return errors.ExitCode(err)
}
