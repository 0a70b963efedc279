package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	s, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Width", s.Width, ScreenWidth},
		{"Height", s.Height, ScreenHeight},
		{"Title", s.Title, WindowTitle},
		{"Seed", s.Seed, int64(0)},
		{"SpeedConstant", s.SpeedConstant, SpeedConstant},
		{"RolesFile", s.RolesFile, ""},
		{"Font", s.Font, DefaultFontLocator},
		{"Navigator", s.Navigator, DefaultNavigator},
		{"Verbose", s.Verbose, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Settings) any
		want   any
	}{
		{"seed", "SOLAR_SEED", "42", func(s Settings) any { return s.Seed }, int64(42)},
		{"speed_constant", "SOLAR_SPEED_CONSTANT", "0.25", func(s Settings) any { return s.SpeedConstant }, 0.25},
		{"roles_file", "SOLAR_ROLES_FILE", "/tmp/roles.toml", func(s Settings) any { return s.RolesFile }, "/tmp/roles.toml"},
		{"navigator", "SOLAR_NAVIGATOR", "browser", func(s Settings) any { return s.Navigator }, "browser"},
		{"verbose", "SOLAR_VERBOSE", "true", func(s Settings) any { return s.Verbose }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.SetEnvPrefix("SOLAR")
			viper.AutomaticEnv()
			t.Setenv(tt.envKey, tt.envVal)

			s, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(s))
		})
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"zero width", "width", 0},
		{"negative height", "height", -10},
		{"zero speed constant", "speed_constant", 0.0},
		{"empty font", "font", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
