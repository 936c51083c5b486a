package main

import (
	"os"

	"github.com/ecomodal/footprint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
