// Package main provides the CLI entrypoint for namelist-generator.
//
// namelist-generator reads structured simulation documents (XML, JSON or
// YAML) and writes the equivalent namelist-and-card program input:
//   - convert renders a document
//   - check lists document leaves no template consumes
//   - templates summarizes the built-in converter kinds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	log     *zap.Logger
	owned   bool
}

func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{log: log}

	root := &cobra.Command{
		Use:   "namelist-generator",
		Short: "Convert structured simulation documents into namelist input",
		Long: `namelist-generator converts XML, JSON or YAML simulation documents into
Fortran namelist input with trailing cards.

The converter kind is detected from the document root unless --kind is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error
			a.log, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.owned = true

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.owned {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newTemplatesCmd(a))

	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
