// Package main is the entry point for the archsim CLI.
package main

import (
	"os"

	"archsim/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
