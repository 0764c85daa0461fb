// Package cmdutil provides shared command utilities for param subcommands.
// It centralizes flag group management, source input, update parsing and
// reporting.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PatchFlags holds flags common to commands that rewrite a source file
// (set, apply).
type PatchFlags struct {
	Write  bool
	Diff   bool
	Strict bool
}

// AddTo registers the patch flags on the given cobra command.
func (f *PatchFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Write, "write", "w", false,
		"Write the result back to the file instead of printing it")
	cmd.Flags().BoolVar(&f.Diff, "diff", false,
		"Print the changed lines instead of the full source")
	cmd.Flags().BoolVar(&f.Strict, "strict", false,
		"Fail when an update names an unknown parameter or carries an invalid value")
}

// Validate checks flag combinations against the source path.
func (f *PatchFlags) Validate(path string) error {
	if f.Write && IsStdin(path) {
		return fmt.Errorf("--write cannot be used when reading from stdin")
	}
	return nil
}

// ValuesFlags holds the values files of `param apply`.
type ValuesFlags struct {
	Files []string
}

// AddTo registers the values flags on the given cobra command.
func (f *ValuesFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.Files, "values", "f", nil,
		"YAML or JSON values file mapping parameter names to values (can be repeated)")
}

// Validate checks that at least one values file is given.
func (f *ValuesFlags) Validate() error {
	if len(f.Files) == 0 {
		return fmt.Errorf("at least one --values file is required")
	}
	return nil
}
