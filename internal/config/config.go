// Package config provides configuration types and defaults for mdrender.
package config

import (
	"time"
)

// WatchConfig holds watch-mode options.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all configuration options for mdrender.
type Config struct {
	// Width is the wrap and banner width in terminal cells.
	// 0 means detect from the terminal, falling back to 80.
	Width int `mapstructure:"width"`

	// NoColor suppresses all escape sequences in the output.
	NoColor bool `mapstructure:"no_color"`

	// Theme names the highlight theme: "dark" or "light".
	Theme string `mapstructure:"theme"`

	Watch WatchConfig `mapstructure:"watch"`

	// Debug enables the debug log. Also switched on by MDRENDER_DEBUG.
	Debug bool `mapstructure:"debug"`

	// DebugLog is the debug log file path.
	DebugLog string `mapstructure:"debug_log"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Width:   0,
		NoColor: false,
		Theme:   "dark",
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 250 * time.Millisecond,
		},
		Debug:    false,
		DebugLog: "mdrender-debug.log",
	}
}
