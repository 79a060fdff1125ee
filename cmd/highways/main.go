package main

import (
	"os"

	"highways/cmd/highways/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
