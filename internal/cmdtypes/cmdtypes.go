// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/param, internal/cmd/config).
package cmdtypes

import (
	"github.com/scadparam/scadparam/internal/config"
	oerrors "github.com/scadparam/scadparam/internal/errors"
	"github.com/scadparam/scadparam/internal/output"
	"github.com/scadparam/scadparam/internal/scad"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config     *config.Config  // loaded config with defaults applied
	ConfigPath string          // resolved --config path
	Resolved   config.Resolved // output and timestamps with provenance
	Verbose    bool
}

// OutputFormat returns the resolved output format, falling back to YAML for
// unknown names and an uninitialized config.
func (g *GlobalConfig) OutputFormat() output.Format {
	if g == nil {
		return output.FormatYAML
	}
	f, _ := output.ParseFormat(g.Resolved.OutputFormat())
	return f
}

// Libraries returns the configured library list.
func (g *GlobalConfig) Libraries() []scad.Library {
	if g == nil {
		return scad.DefaultLibraries()
	}
	return g.Config.KnownLibraries()
}

// Exit codes: aliases to internal/errors constants.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
