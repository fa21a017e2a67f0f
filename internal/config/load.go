package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would make the simulator unusable.
func (c *Config) Validate() error {
	if c.Graphics.Width < 2 || c.Graphics.Height < 2 {
		return fmt.Errorf("graphics: window size %dx%d too small", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Lathe.SpindleSpeed < 0 {
		return fmt.Errorf("lathe: negative spindle speed %v", c.Lathe.SpindleSpeed)
	}
	if c.Audio.CutInterval < 0 {
		return fmt.Errorf("audio: negative cut interval %v", c.Audio.CutInterval)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "LatheSim")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "LatheSim")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lathe-sim")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lathe-sim")
	}
}

// loadFromFile merges a YAML file over the existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
