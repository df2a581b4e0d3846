// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"packtrader/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used in platform paths.
	AppName = "packtrader"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema []byte

// Config is the application configuration.
type Config struct {
	// SearchPaths are additional discovery roots, consulted before the
	// platform data dirs.
	SearchPaths []string `mapstructure:"search_paths"`
	// StructureDirs are additional structure-module directories, consulted
	// before the platform structure dirs.
	StructureDirs []string `mapstructure:"structure_dirs"`
	// ExtraCategories are custom category labels to register.
	ExtraCategories []string `mapstructure:"extra_categories"`
	// Verbose enables verbose diagnostic logging.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// configDirOverride lets tests redirect config loading to a scratch
// directory.
var configDirOverride string

// configFilePathOverride points Load at an explicit config file, set from
// the CLI --config flag.
var configFilePathOverride string

// SetConfigFilePathOverride makes Load read the given file instead of the
// platform default location.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// OverrideConfigDir redirects ConfigDir to dir and returns a restore
// function. Test-only hook.
func OverrideConfigDir(dir string) func() {
	prev := configDirOverride
	configDirOverride = dir
	return func() { configDirOverride = prev }
}

// ConfigDir returns the packtrader configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration from the platform config dir, falling back to
// defaults when no config file exists.
func Load() (*Config, error) {
	if configFilePathOverride != "" {
		return LoadFrom(configFilePathOverride)
	}
	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the configuration file at path.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("search_paths", defaults.SearchPaths)
	v.SetDefault("structure_dirs", defaults.StructureDirs)
	v.SetDefault("extra_categories", defaults.ExtraCategories)
	v.SetDefault("verbose", defaults.Verbose)

	if err := loadCUEIntoViper(v, path); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper. Decoding goes through a plain
// map because Viper merges maps, not structs.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	unified, err := cueutil.ValidateAgainstSchema(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	for key, value := range configMap {
		v.Set(key, value)
	}
	return nil
}
