// Package param provides the `scadparam param` command group.
package param

import (
	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
)

// NewParamCmd creates the param command group.
func NewParamCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "param",
		Short: "Parameter operations",
		Long: `Commands for reading and rewriting the customizer parameters of an OpenSCAD file.

Parameters are the top-level assignments before the first module or function
definition. Every FILE argument may be "-" to read from stdin.`,
	}

	c.AddCommand(
		NewExtractCmd(cfg),
		NewSetCmd(cfg),
		NewApplyCmd(cfg),
		NewDiffCmd(cfg),
		NewDefinesCmd(cfg),
		NewArtifactCmd(cfg),
		NewWatchCmd(cfg),
	)

	return c
}
