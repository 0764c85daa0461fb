package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for scadparam configuration.
const envPrefix = "SCADPARAM"

// Environment variables read directly.
const (
	EnvConfig     = "SCADPARAM_CONFIG"
	EnvOutput     = "SCADPARAM_OUTPUT"
	EnvTimestamps = "SCADPARAM_LOG_TIMESTAMPS"
)

// Loader reads the configuration file with viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from the given file path. If configFile is empty
// the default path is used. A missing file is not an error: the returned
// Config is empty and callers apply defaults.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	l.v.SetConfigFile(ExpandTilde(configFile))
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// envValue returns the SCADPARAM_ environment value for a config key, with
// dots mapped to underscores (log.timestamps -> SCADPARAM_LOG_TIMESTAMPS).
func envValue(key string) string {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v.GetString(key)
}
