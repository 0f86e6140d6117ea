// Package config loads editor settings: physical defaults applied to newly
// created walls and the device-cell grid spacing. Values are read once at
// startup and consulted at wall-creation time only; changing them never
// rewrites existing geometry.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the external configuration.
type Config struct {
	// WallHeight is the default wall height in centimeters.
	WallHeight float64 `mapstructure:"wallHeight"`
	// WallThickness is the default wall thickness in centimeters.
	WallThickness float64 `mapstructure:"wallThickness"`
	// GridSize is the grid spacing in device cells. The visual grid stays
	// constant on screen across zoom levels; the snap granularity in world
	// units scales with zoom.
	GridSize int `mapstructure:"gridSize"`
	// LogFile is where the session log goes; the terminal itself is owned
	// by the UI.
	LogFile string `mapstructure:"logFile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WallHeight:    250,
		WallThickness: 10,
		GridSize:      20,
		LogFile:       "drafter.log",
	}
}

// Load reads configuration from an optional drafter.yaml/json/toml in the
// working directory or ~/.config/drafter, with DRAFTER_* environment
// variables taking precedence. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("wallHeight", def.WallHeight)
	v.SetDefault("wallThickness", def.WallThickness)
	v.SetDefault("gridSize", def.GridSize)
	v.SetDefault("logFile", def.LogFile)

	v.SetConfigName("drafter")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/drafter")
	v.SetEnvPrefix("drafter")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = def.GridSize
	}
	return cfg, nil
}
