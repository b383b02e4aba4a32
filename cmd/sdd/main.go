package main

import (
	"os"

	"github.com/sdd-agents/sdd/cmd/sdd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
