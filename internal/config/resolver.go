package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scadparam/scadparam/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  any
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]any
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SCADPARAM_CONFIG env, (3) ~/.scadparam/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[Source]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	result.ConfigPath = ExpandTilde(result.ConfigPath)
	return result, nil
}

// ResolveOptions carries the flag values that take part in resolution.
// Empty strings and nil pointers mean the flag was not given.
type ResolveOptions struct {
	OutputFlag     string
	TimestampsFlag *bool
	Config         *Config
}

// Resolved is the effective configuration after applying precedence.
type Resolved struct {
	Output     ResolvedValue
	Timestamps ResolvedValue
}

// OutputFormat returns the resolved output format.
func (r Resolved) OutputFormat() string {
	s, _ := r.Output.Value.(string)
	return s
}

// ShowTimestamps returns the resolved timestamps setting.
func (r Resolved) ShowTimestamps() bool {
	b, _ := r.Timestamps.Value.(bool)
	return b
}

// Values returns the resolved values in a stable order for logging.
func (r Resolved) Values() []ResolvedValue {
	return []ResolvedValue{r.Output, r.Timestamps}
}

// Resolve resolves each setting using precedence flag > env > config > default.
func Resolve(opts ResolveOptions) (Resolved, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	var flagOutput, configOutput any
	if opts.OutputFlag != "" {
		flagOutput = opts.OutputFlag
	}
	if cfg.Output != "" {
		configOutput = cfg.Output
	}
	var envOutput any
	if s := envValue("output"); s != "" {
		envOutput = s
	}
	out := resolve("output", flagOutput, envOutput, configOutput, DefaultOutput)

	var flagTS, envTS, configTS any
	if opts.TimestampsFlag != nil {
		flagTS = *opts.TimestampsFlag
	}
	if s := envValue("log.timestamps"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Resolved{}, fmt.Errorf("parsing %s=%q: %w", EnvTimestamps, s, err)
		}
		envTS = b
	}
	if cfg.Log.Timestamps != nil {
		configTS = *cfg.Log.Timestamps
	}
	ts := resolve("log.timestamps", flagTS, envTS, configTS, true)

	return Resolved{Output: out, Timestamps: ts}, nil
}

// resolve picks the first non-nil candidate and records the rest as shadowed.
func resolve(key string, flag, env, cfg, def any) ResolvedValue {
	candidates := []struct {
		source Source
		value  any
	}{
		{SourceFlag, flag},
		{SourceEnv, env},
		{SourceConfig, cfg},
		{SourceDefault, def},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[Source]any)}
	for _, c := range candidates {
		if c.value == nil {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
