package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "solarsystem",
	Short: "Member roles orbiting a central body",
	Long: "solarsystem opens a window with one sphere per member role orbiting a central body.\n" +
		"Hover a sphere to highlight it, click it to follow its link.",
	SilenceUsage: true,
	RunE:         runScene,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .solar.toml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("roles", "", "TOML file with [[role]] entries (default built-in roles)")
	flags.Int64("seed", 0, "random seed for initial orbit angles (0 = time based)")
	flags.String("font", "", "label font: builtin:goregular, a file path or an http(s) URL")
	flags.String("navigator", "", "where clicked links go: log or browser")
	flags.Int("width", 0, "initial window width")
	flags.Int("height", 0, "initial window height")
	flags.Float64("speed-constant", 0, "angular speed numerator, speed = k / distance")
	flags.String("pprof", "", "address for the pprof HTTP server, e.g. localhost:6060")

	for key, flag := range map[string]string{
		"verbose":        "verbose",
		"roles_file":     "roles",
		"seed":           "seed",
		"font":           "font",
		"navigator":      "navigator",
		"width":          "width",
		"height":         "height",
		"speed_constant": "speed-constant",
		"pprof":          "pprof",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".solar")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SOLAR")
	viper.AutomaticEnv()

	// Без файла конфигурации работаем на значениях по умолчанию.
	_ = viper.ReadInConfig()
}
