// Package main is the entry point for seqterm.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dshills/seqterm/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := newRootCommand().Execute()
	switch {
	case err == nil, errors.Is(err, app.ErrQuit):
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
