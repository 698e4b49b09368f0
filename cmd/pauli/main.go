// SPDX-License-Identifier: MIT

// Command pauli is the entry point for the pauli CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pauli/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
