package param

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/scad"
)

// NewDefinesCmd creates the param defines command.
func NewDefinesCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var sets []string

	c := &cobra.Command{
		Use:   "defines FILE",
		Short: "Print -D arguments for the openscad binary",
		Long: `Print one -Dname=value argument per parameter, quoted for a POSIX shell, so
the current values can be passed to the openscad command line.`,
		Example: `  openscad -o box.stl $(scadparam param defines box.scad) box.scad
  scadparam param defines box.scad --set width=40`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			source, err := cmdutil.ReadSource(args[0], c.InOrStdin())
			if err != nil {
				return err
			}

			if len(sets) > 0 {
				updates, err := cmdutil.ParseAssignments(sets)
				if err != nil {
					return err
				}
				params := scad.Extract(source)
				var results []scad.UpdateResult
				source, results = scad.ApplyUpdates(source, updates)
				if err := cmdutil.ReportUpdates(params, results, cmdutil.ReportOptions{Path: args[0]}); err != nil {
					return err
				}
			}

			for _, d := range scad.Defines(scad.Extract(source)) {
				fmt.Fprintln(c.OutOrStdout(), d)
			}
			return nil
		},
	}

	c.Flags().StringArrayVar(&sets, "set", nil, "Override a value before rendering, as NAME=VALUE (can be repeated)")

	return c
}
