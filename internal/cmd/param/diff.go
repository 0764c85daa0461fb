package param

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/output"
	"github.com/scadparam/scadparam/internal/paramdiff"
)

// NewDiffCmd creates the param diff command.
func NewDiffCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare the parameters of two files",
		Long: `Compare the parameters of two OpenSCAD files. Parameters are matched by name
and reported as added, removed or modified; modified parameters show which of
type, value, group, description, range and options changed.

The command exits 0 whether or not there are differences.`,
		Example: `  scadparam param diff box_v1.scad box_v2.scad
  git show HEAD~1:box.scad | scadparam param diff - box.scad`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, args[0], args[1])
		},
	}
}

func runDiff(c *cobra.Command, oldPath, newPath string) error {
	if cmdutil.IsStdin(oldPath) && cmdutil.IsStdin(newPath) {
		return fmt.Errorf("only one of OLD and NEW can read from stdin")
	}

	oldSrc, err := cmdutil.ReadSource(oldPath, c.InOrStdin())
	if err != nil {
		return err
	}
	newSrc, err := cmdutil.ReadSource(newPath, c.InOrStdin())
	if err != nil {
		return err
	}

	color := output.ColorEnabled()
	result, err := paramdiff.Compare(oldSrc, newSrc, paramdiff.Options{UseColor: color})
	if err != nil {
		return fmt.Errorf("comparing parameters: %w", err)
	}
	output.Debug("parameter diff", "old", oldPath, "new", newPath, "summary", result.Summary())

	modified := make([]output.ModifiedItem, len(result.Modified))
	for i, m := range result.Modified {
		modified[i] = output.ModifiedItem{Name: m.Name, Diff: m.Diff}
	}

	fmt.Fprint(c.OutOrStdout(), output.RenderDiff(result.Added, result.Removed, modified, output.StylesFor(color)))
	return nil
}
