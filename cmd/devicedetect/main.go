package main

import (
	"context"
	"os"
)

// Set via ldflags.
var version = "dev"

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
