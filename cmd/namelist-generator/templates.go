package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"namelist-generator/internal/converter"
	"namelist-generator/internal/mapping"
)

func newTemplatesCmd(a *app) *cobra.Command {
	var (
		kind   string
		paths  bool
		export string
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Summarize the built-in converter templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := converter.ParseKind(kind)
			if err != nil {
				return err
			}

			if export != "" {
				return exportTemplate(a, k, export)
			}

			kinds := converter.Kinds()
			if k != converter.KindAuto {
				kinds = []converter.Kind{k}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tROOT\tINPUT\tINVARIANT\tVARIANT")

			for _, k := range kinds {
				c, err := converter.Compile(k)
				if err != nil {
					return err
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
					k, k.Root(), k.SubRoot(), c.Maps.Invariant.Len(), len(c.Maps.Variant))
			}

			if err := w.Flush(); err != nil {
				return err
			}

			if !paths {
				return nil
			}

			for _, k := range kinds {
				c, err := converter.Compile(k)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "\n# %s\n", k)

				for _, p := range c.Maps.Paths() {
					if t, ok := c.Maps.Invariant.Get(p); ok {
						fmt.Fprintf(out, "%s -> %s\n", p, t)
					}

					for _, d := range c.Maps.Variant[p] {
						fmt.Fprintf(out, "%s -> %s via %s\n", p, d.Target, d.Encoder)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "auto", "Only this kind")
	cmd.Flags().BoolVar(&paths, "paths", false, "List every routed path")
	cmd.Flags().StringVar(&export, "export", "", "Write the template of --kind to a file, as a starting point for --template")

	return cmd
}

func exportTemplate(a *app, k converter.Kind, path string) error {
	if k == converter.KindAuto {
		return errors.New("--export needs a concrete --kind")
	}

	tpl, err := converter.Template(k)
	if err != nil {
		return err
	}

	if err := mapping.WriteFile(tpl, path); err != nil {
		return err
	}

	a.log.Info("template written", zap.String("file", path), zap.Stringer("kind", k))

	return nil
}
