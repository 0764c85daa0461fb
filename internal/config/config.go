// Package config provides configuration loading and management.
package config

import (
	"github.com/scadparam/scadparam/internal/scad"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	// Env: SCADPARAM_LOG_TIMESTAMPS
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the scadparam configuration.
// Loaded from ~/.scadparam/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Output is the default output format for commands that print
	// parameters: yaml, json or table.
	// Env: SCADPARAM_OUTPUT, Default: yaml
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`

	// Libraries are the OpenSCAD libraries recognised in sources.
	// Default: MCAD, BOSL2, BOSL.
	Libraries []scad.Library `json:"libraries,omitempty" yaml:"libraries,omitempty" mapstructure:"libraries"`
}

// DefaultOutput is the output format used when none is configured.
const DefaultOutput = "yaml"

// DefaultConfig returns a Config with all default values populated.
// Used by `scadparam config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Output:    DefaultOutput,
		Log:       LogConfig{Timestamps: &timestamps},
		Libraries: scad.DefaultLibraries(),
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Output == "" {
		out.Output = def.Output
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	if len(out.Libraries) == 0 {
		out.Libraries = def.Libraries
	}
	return &out
}

// KnownLibraries returns the configured library list, or the defaults when
// none is configured.
func (c *Config) KnownLibraries() []scad.Library {
	if c == nil || len(c.Libraries) == 0 {
		return scad.DefaultLibraries()
	}
	return c.Libraries
}
