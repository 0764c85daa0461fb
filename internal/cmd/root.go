// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmd/config"
	"github.com/scadparam/scadparam/internal/cmd/param"
	"github.com/scadparam/scadparam/internal/cmdtypes"
	cfgpkg "github.com/scadparam/scadparam/internal/config"
	oerrors "github.com/scadparam/scadparam/internal/errors"
	"github.com/scadparam/scadparam/internal/output"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the scadparam CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "scadparam",
		Short: "Inspect and edit OpenSCAD customizer parameters",
		Long: `scadparam reads the parameters declared in the header of an OpenSCAD file
and rewrites their values in place, leaving every other byte untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: SCADPARAM_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "",
		"Output format: "+strings.Join(output.ValidFormats(), ", ")+" (env: SCADPARAM_OUTPUT, default: yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output (env: SCADPARAM_LOG_TIMESTAMPS)")

	rootCmd.AddCommand(param.NewParamCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, resolves flag/env/config values and
// sets up logging. A broken config file does not stop commands that can run
// on defaults; `config vet` reports it.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	pathResult, err := cfgpkg.ResolveConfigPath(cfgpkg.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	// Defaults are applied by Resolve so that provenance stays accurate.
	loaded, loadErr := cfgpkg.NewLoader().Load(pathResult.ConfigPath)
	if loadErr != nil {
		loaded = &cfgpkg.Config{}
	}

	opts := cfgpkg.ResolveOptions{Config: loaded}
	if c.Flags().Changed("output") {
		opts.OutputFlag = flags.output
	}
	if c.Flags().Changed("timestamps") {
		opts.TimestampsFlag = output.BoolPtr(flags.timestamps)
	}

	resolved, err := cfgpkg.Resolve(opts)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}
	if _, ok := output.ParseFormat(resolved.OutputFormat()); !ok {
		return oerrors.NewExitError(
			oerrors.NewValidationError(
				fmt.Sprintf("unknown output format %q (source: %s)", resolved.OutputFormat(), resolved.Output.Source),
				"", "output",
				"use one of: "+strings.Join(output.ValidFormats(), ", "),
			),
			oerrors.ExitValidationError,
		)
	}

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(resolved.ShowTimestamps()),
	})

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", pathResult.ConfigPath, "error", loadErr)
	}

	cfg.Config = loaded
	cfg.ConfigPath = pathResult.ConfigPath
	cfg.Resolved = resolved
	cfg.Verbose = flags.verbose

	if flags.verbose {
		output.Debug("initializing CLI",
			"config", pathResult.ConfigPath,
			"config_source", pathResult.Source,
			"output", resolved.OutputFormat(),
		)
		cfgpkg.LogResolvedValues(resolved.Values())
	}

	return nil
}
