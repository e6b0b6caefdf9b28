// Package main provides the cstubgen CLI.
package main

import (
	"os"

	"github.com/example/cstubgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
