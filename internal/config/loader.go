package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides
// (e.g. TASKFORGE_DEFAULT_SCRIPT_RUNNER overrides default_script_runner).
const envPrefix = "TASKFORGE"

// configName is the settings file base name searched for by [Loader.Load].
const configName = "taskforge-config"

// Loader handles Viper-based settings loading.
//
// Resolution priority (highest to lowest):
//  1. Environment variables (TASKFORGE_ prefix)
//  2. File named by TASKFORGE_CONFIG_PATH
//  3. taskforge-config.yaml in the user config directory
//  4. taskforge-config.yaml in the current directory
//  5. [DefaultConfig] defaults
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment binding prepared.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := DefaultConfig()
	v.SetDefault("taskfile", defaults.Taskfile)
	v.SetDefault("default_script_runner", defaults.DefaultScriptRunner)
	v.SetDefault("output.color", defaults.Output.Color)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads settings using the documented resolution order. A missing
// settings file is not an error; defaults and environment overrides apply.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(envPrefix + "_CONFIG_PATH"); path != "" {
		return l.LoadFromFile(path)
	}

	l.v.SetConfigName(configName)
	if dir, err := os.UserConfigDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(dir, "taskforge"))
	}
	l.v.AddConfigPath(".")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadFromFile reads settings from an explicit file path.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
