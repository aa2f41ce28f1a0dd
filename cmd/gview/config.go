package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds persistent viewer settings
type Config struct {
	ZoomSpeed     float64 `toml:"zoom_speed"`
	ScreenPadding float64 `toml:"screen_padding"`
	Layout        string  `toml:"layout"` // "force" or "static"
	RestartOnDrag bool    `toml:"restart_on_drag"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		ZoomSpeed:     0.1,
		ScreenPadding: 0.3,
		Layout:        "force",
		RestartOnDrag: true,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gview.toml"
	}
	return filepath.Join(home, ".gview.toml")
}

// LoadConfig loads configuration, falling back to defaults when the
// file is absent or malformed.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(ConfigPath(), &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.Layout != "force" && cfg.Layout != "static" {
		cfg.Layout = "force"
	}
	if cfg.ZoomSpeed <= 0 {
		cfg.ZoomSpeed = 0.1
	}
	return cfg
}

// SaveConfig writes the configuration back to disk.
func SaveConfig(cfg Config) error {
	f, err := os.Create(ConfigPath())
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
