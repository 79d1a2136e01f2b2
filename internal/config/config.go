// Package config loads contactbook settings from an optional YAML file and
// CONTACTBOOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings backends.
const (
	SettingsBackendYAML   = "yaml"
	SettingsBackendSQLite = "sqlite"
)

type Config struct {
	DataDir      string         `mapstructure:"data_dir"`
	ContactsFile string         `mapstructure:"contacts_file"`
	Settings     SettingsConfig `mapstructure:"settings"`
	Log          LogConfig      `mapstructure:"log"`
}

type SettingsConfig struct {
	Backend string `mapstructure:"backend"`
	File    string `mapstructure:"file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultDataDir is the user-scoped application data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "contactbook")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".contactbook"
	}
	return filepath.Join(home, ".local", "share", "contactbook")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("contacts_file", "contacts.json")
	v.SetDefault("settings.backend", SettingsBackendYAML)
	v.SetDefault("settings.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads configuration. If path is empty, config.yaml is looked up in the
// working directory and the default data directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultDataDir())
	}

	v.SetEnvPrefix("CONTACTBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and fills in derived defaults.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if c.ContactsFile == "" {
		return fmt.Errorf("config: contacts_file is required")
	}

	c.Settings.Backend = strings.ToLower(c.Settings.Backend)
	switch c.Settings.Backend {
	case SettingsBackendYAML:
		if c.Settings.File == "" {
			c.Settings.File = "settings.yaml"
		}
	case SettingsBackendSQLite:
		if c.Settings.File == "" {
			c.Settings.File = "settings.db"
		}
	default:
		return fmt.Errorf("config: settings.backend %q is invalid (must be yaml or sqlite)", c.Settings.Backend)
	}
	return nil
}

// ContactsPath is the absolute location of the contacts file.
func (c *Config) ContactsPath() string {
	return resolve(c.DataDir, c.ContactsFile)
}

// SettingsPath is the absolute location of the settings file or database.
func (c *Config) SettingsPath() string {
	return resolve(c.DataDir, c.Settings.File)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
