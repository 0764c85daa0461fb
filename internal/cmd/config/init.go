package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/config"
	oerrors "github.com/scadparam/scadparam/internal/errors"
	"github.com/scadparam/scadparam/internal/output"
)

const configHeader = "# scadparam configuration\n# Validate with: scadparam config vet\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new scadparam configuration file",
		Long: `Create a new scadparam configuration file with default values.

The configuration file is created at ~/.scadparam/config.yaml by default.
Use --config flag or SCADPARAM_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("getting config file path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if os.IsPermission(err) {
			return oerrors.NewPermissionError(err.Error(), map[string]string{"Path": path}, "")
		}
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}

func defaultConfigFile() (string, error) {
	path, err := config.GetConfigFile()
	if err != nil {
		return "", err
	}
	return config.ExpandTilde(path), nil
}
