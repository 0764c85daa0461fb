// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the scadparam CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path, falling back to the default
// location when the command runs without the root pre-run.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return cfg.ConfigPath, nil
	}
	return defaultConfigFile()
}
