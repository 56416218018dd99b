// Package main provides the CLI for symcheck.
package main

import (
	"os"

	"github.com/leapstack-labs/symcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
