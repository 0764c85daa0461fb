package param

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/scad"
)

// NewApplyCmd creates the param apply command.
func NewApplyCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &cmdutil.PatchFlags{}
	values := &cmdutil.ValuesFlags{}

	c := &cobra.Command{
		Use:   "apply FILE",
		Short: "Change parameter values from a values file",
		Long: `Change parameter values from one or more YAML or JSON files that map
parameter names to values. Files are applied in the order given and entries in
document order, so later entries win.`,
		Example: `  scadparam param apply box.scad -f large.yaml --write
  echo '{"width": 40}' | scadparam param apply box.scad -f -`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := values.Validate(); err != nil {
				return err
			}

			var updates []scad.Update
			for _, file := range values.Files {
				if cmdutil.IsStdin(file) && cmdutil.IsStdin(args[0]) {
					return fmt.Errorf("FILE and --values cannot both read from stdin")
				}
				u, err := cmdutil.LoadValues(file, c.InOrStdin())
				if err != nil {
					return err
				}
				updates = append(updates, u...)
			}
			return patchSource(c, args[0], updates, flags)
		},
	}

	flags.AddTo(c)
	values.AddTo(c)

	return c
}
