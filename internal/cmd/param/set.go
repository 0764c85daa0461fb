package param

import (
	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
)

// NewSetCmd creates the param set command.
func NewSetCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &cmdutil.PatchFlags{}

	c := &cobra.Command{
		Use:   "set FILE NAME=VALUE...",
		Short: "Change parameter values",
		Long: `Change the literal values of parameters in place. Values are converted to the
type of the parameter: numbers, true/false, text, or lists written as [1,2,3].

Unknown names and values of the wrong type are skipped with a warning; with
--strict they fail the command and nothing is printed or written.`,
		Example: `  scadparam param set box.scad width=30 shape=cyl
  scadparam param set box.scad 'holes=[2,3]' --diff
  scadparam param set box.scad label="Hello" --write`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			updates, err := cmdutil.ParseAssignments(args[1:])
			if err != nil {
				return err
			}
			return patchSource(c, args[0], updates, flags)
		},
	}

	flags.AddTo(c)

	return c
}
