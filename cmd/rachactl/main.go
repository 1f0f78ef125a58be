package main

import (
	"os"

	"racha/cmd/rachactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
