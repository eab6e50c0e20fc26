package main

import (
	"os"

	"github.com/katalvlaran/infocode/cmd/infocode/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
