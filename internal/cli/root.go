// Package cli provides the command-line interface for cstubgen.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "cstubgen",
		Short: "Generate C stub implementations from SDK header files",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
