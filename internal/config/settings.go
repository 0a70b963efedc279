package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds runtime configuration for a scene session.
// Values are populated from .solar.toml, SOLAR_* env vars, and CLI flags.
type Settings struct {
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	Title         string  `mapstructure:"title"`
	Seed          int64   `mapstructure:"seed"`
	SpeedConstant float64 `mapstructure:"speed_constant"`
	RolesFile     string  `mapstructure:"roles_file"`
	Font          string  `mapstructure:"font"`
	Navigator     string  `mapstructure:"navigator"`
	Pprof         string  `mapstructure:"pprof"`
	Verbose       bool    `mapstructure:"verbose"`
}

// Load reads settings from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Settings, error) {
	viper.SetDefault("width", ScreenWidth)
	viper.SetDefault("height", ScreenHeight)
	viper.SetDefault("title", WindowTitle)
	viper.SetDefault("seed", 0)
	viper.SetDefault("speed_constant", SpeedConstant)
	viper.SetDefault("roles_file", "")
	viper.SetDefault("font", DefaultFontLocator)
	viper.SetDefault("navigator", DefaultNavigator)
	viper.SetDefault("pprof", "")
	viper.SetDefault("verbose", false)

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the scene cannot start with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.SpeedConstant <= 0 {
		return fmt.Errorf("config: speed_constant must be positive, got %v", s.SpeedConstant)
	}
	if s.Font == "" {
		return fmt.Errorf("config: font locator is empty")
	}
	return nil
}
