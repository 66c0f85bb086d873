package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	// Flags, config and subcommands are handled by the cobra tree.
	os.Exit(cli.Execute())
}
