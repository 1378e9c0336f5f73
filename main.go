package main

import (
	"os"

	"github.com/edugen/tka/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
