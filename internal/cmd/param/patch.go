package param

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/output"
	"github.com/scadparam/scadparam/internal/scad"
)

// patchSource applies updates to the source at path and emits the result
// according to flags: the full new source on stdout, a line diff with
// --diff, or an in-place rewrite with --write.
func patchSource(c *cobra.Command, path string, updates []scad.Update, flags *cmdutil.PatchFlags) error {
	if err := flags.Validate(path); err != nil {
		return err
	}

	source, err := cmdutil.ReadSource(path, c.InOrStdin())
	if err != nil {
		return err
	}

	params := scad.Extract(source)
	patched, results := scad.ApplyUpdates(source, updates)

	if err := cmdutil.ReportUpdates(params, results, cmdutil.ReportOptions{Path: path, Strict: flags.Strict}); err != nil {
		return err
	}

	out := c.OutOrStdout()
	if flags.Diff {
		fmt.Fprint(out, output.SourceDiff(source, patched, output.StylesFor(output.ColorEnabled())))
	}

	if flags.Write {
		if patched == source {
			output.FileLogger(path).Info("no changes to write")
			return nil
		}
		if err := cmdutil.WriteSource(path, patched); err != nil {
			return err
		}
		output.FileLogger(path).Info(output.FormatCheckmark("written"))
		return nil
	}

	if !flags.Diff {
		fmt.Fprint(out, patched)
	}
	return nil
}
