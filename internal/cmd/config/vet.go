package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/config"
	oerrors "github.com/scadparam/scadparam/internal/errors"
	"github.com/scadparam/scadparam/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the scadparam configuration file",
		Long: `Validate the scadparam configuration file against the internal schema.

The command validates the configuration file at ~/.scadparam/config.yaml by default.
Use --config flag or SCADPARAM_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("getting config file path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewExitError(
			fmt.Errorf("config file not found: %s", path),
			oerrors.ExitNotFound,
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			stderr := c.ErrOrStderr()
			fmt.Fprintln(stderr, "Error: config validation failed")
			fmt.Fprintf(stderr, "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(stderr, "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{
				Code:    oerrors.ExitValidationError,
				Err:     oerrors.Wrap(oerrors.ErrValidation, "config validation failed"),
				Printed: true,
			}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
