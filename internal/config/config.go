// Package config manages CLI configuration from files and environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, as in XLSXBOOK_LOG_LEVEL.
const EnvPrefix = "XLSXBOOK"

// Config holds the CLI configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Output struct {
		Format string `mapstructure:"format"`
		Pretty bool   `mapstructure:"pretty"`
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`
	Open struct {
		Concurrent bool `mapstructure:"concurrent"`
	} `mapstructure:"open"`
}

// New returns a viper instance with defaults and environment overrides set
// but no file read yet. Flags can be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.color", true)
	v.SetDefault("open.concurrent", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file into v and decodes the result. An
// explicit file must exist; the default ~/.xlsxbook/config.yaml is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dir returns the directory holding the default config file.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xlsxbook"
	}
	return filepath.Join(home, ".xlsxbook")
}
