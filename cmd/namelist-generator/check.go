package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namelist-generator/internal/converter"
)

func newCheckCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "List document leaves that no template entry consumes",
		Long: `check walks a document without converting it and reports every leaf
the converter would drop, with the closest template paths. It fails when
any leaf is unmapped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := converter.DefaultOptions()
			opts.Logger = a.log

			doc, c, err := in.load(args[0], opts)
			if err != nil {
				return err
			}

			unmapped, err := c.Unmapped(doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, u := range unmapped {
				if len(u.Suggestions) == 0 {
					fmt.Fprintln(out, u.Path)
					continue
				}

				fmt.Fprintf(out, "%s (did you mean %s?)\n", u.Path, strings.Join(u.Suggestions, ", "))
			}

			if len(unmapped) > 0 {
				return fmt.Errorf("%s: %d unmapped paths for %s", args[0], len(unmapped), c.Kind())
			}

			fmt.Fprintf(out, "%s: all paths mapped for %s\n", args[0], c.Kind())

			return nil
		},
	}

	in.register(cmd)

	return cmd
}
