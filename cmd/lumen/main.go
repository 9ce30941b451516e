package main

import (
	"os"

	"github.com/aurorabank/lumen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
