package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show scadparam version information.

Displays:
  - scadparam version, commit, and build date
  - CUE SDK version used for config validation
  - OpenSCAD binary found on PATH, if any`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()

	fmt.Fprintln(out, version.Get().String())
	fmt.Fprintln(out, version.DetectOpenSCAD(c.Context()).String())

	return nil
}
