// Package config loads runtime settings for the server binaries from an
// optional tvbuilder.yaml file and TVBUILDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the public server, the admin server
// and the CLI.
type Config struct {
	Port      string `mapstructure:"port"`
	AdminPort string `mapstructure:"admin_port"`
	DataDir   string `mapstructure:"data_dir"`
	StaticDir string `mapstructure:"static_dir"`
	LogLevel  string `mapstructure:"log_level"`
}

// Load reads tvbuilder.yaml from the working directory if present, then
// applies environment overrides (e.g. TVBUILDER_PORT).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("tvbuilder")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("port", "8080")
	v.SetDefault("admin_port", "8081")
	v.SetDefault("data_dir", ".tvbuilder_data")
	v.SetDefault("static_dir", "web/static")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("TVBUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels, defaulting to
// info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
