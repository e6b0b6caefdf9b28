package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/example/cstubgen/internal/config"
	"github.com/example/cstubgen/internal/generator"
	"github.com/spf13/cobra"
)

// GenerateOptions holds configuration for stub generation.
type GenerateOptions struct {
	IncludeDir      string
	OutputDir       string
	ConfigPath      string
	ReportUnhandled bool
}

func newGenerateCommand() *cobra.Command {
	var opts GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stub files for the configured header targets",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&opts)
		},
	}

	cmd.Flags().StringVar(&opts.IncludeDir, "include", "./include", "Directory containing the source header files")
	cmd.Flags().StringVar(&opts.OutputDir, "output", ".", "Directory for the generated stub files")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to a YAML or TOML config file (defaults are built in)")
	cmd.Flags().BoolVar(&opts.ReportUnhandled, "report-unhandled", true, "Report return types that have no configured default value")

	return cmd
}

// Generate runs stub generation with the given options. Parse failures
// inside an otherwise-matched parameter list abort the run; everything the
// parser merely skips is not an error.
func Generate(opts *GenerateOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gen := generator.New(cfg)
	gen.Progress = os.Stdout

	if err := gen.Run(opts.IncludeDir, opts.OutputDir); err != nil {
		return err
	}

	if opts.ReportUnhandled {
		if types := gen.UnhandledTypes(); len(types) > 0 {
			fmt.Fprintf(os.Stderr, "warning: no default return value configured for: %s\n", strings.Join(types, ", "))
		}
	}

	return nil
}
