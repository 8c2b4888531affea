package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"namelist-generator/internal/converter"
	"namelist-generator/internal/document"
	"namelist-generator/internal/mapping"
	"namelist-generator/internal/schema"
)

// inputFlags are shared by the commands that read a document.
type inputFlags struct {
	format   string
	kind     string
	schema   string
	template string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Document format: xml, json or yaml (default: from extension)")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "auto", "Converter kind: auto, pw, neb, phonon, td, spectrum, xspectra")
	cmd.Flags().StringVar(&f.schema, "schema", "", "Schema table replacing the built-in one")
	cmd.Flags().StringVar(&f.template, "template", "", "Mapping template replacing the built-in one")
}

// load reads the document named by path and builds a converter for it.
func (f *inputFlags) load(path string, opts converter.Options) (*document.Document, *converter.Converter, error) {
	var format document.Format
	if f.format != "" {
		var err error
		if format, err = document.ParseFormat(f.format); err != nil {
			return nil, nil, err
		}
	}

	kind, err := converter.ParseKind(f.kind)
	if err != nil {
		return nil, nil, err
	}

	if f.schema != "" {
		if opts.Schema, err = schema.LoadFile(f.schema); err != nil {
			return nil, nil, err
		}
	}

	if f.template != "" {
		if opts.Template, err = mapping.LoadFile(f.template); err != nil {
			return nil, nil, err
		}
	}

	doc, err := document.ReadFile(path, format)
	if err != nil {
		return nil, nil, err
	}

	if kind, err = converter.Resolve(doc, kind); err != nil {
		return nil, nil, err
	}

	c, err := converter.New(kind, opts)
	if err != nil {
		return nil, nil, err
	}

	return doc, c, nil
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		output     string
		sourceName string
		noDefaults bool
		dump       bool
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Render a document as namelist input",
		Example: `  namelist-generator convert scf.xml
  namelist-generator convert -k neb -o neb.in path.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := converter.DefaultOptions()
			opts.Logger = a.log
			opts.NoDefaults = noDefaults
			opts.SourceFile = sourceName

			doc, c, err := in.load(args[0], opts)
			if err != nil {
				return err
			}

			text, err := c.Convert(doc)
			if err != nil {
				return fmt.Errorf("converting %s: %w", args[0], err)
			}

			if dump {
				fmt.Fprintln(cmd.ErrOrStderr(), c.Dump())
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			if err := converter.WriteFile(output, text); err != nil {
				return err
			}

			a.log.Info("input written",
				zap.String("file", output), zap.Stringer("kind", c.Kind()))

			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the input to a file instead of stdout")
	cmd.Flags().StringVar(&sourceName, "source-name", "", "Document name recorded in the generated input")
	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "Do not synthesize schema defaults")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the converter state to stderr")

	return cmd
}
