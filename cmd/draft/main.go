package main

import (
	"os"

	"github.com/DoyleJ11/lol-draft-sim/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
