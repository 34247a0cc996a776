package main

import (
	"os"

	"github.com/kinur1/FutureInsight/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
