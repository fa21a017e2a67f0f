package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SavePath returns the file settings are written back to: the explicit
// --config path, else an existing config file, else the user's config
// directory.
func SavePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := findConfigFile(); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// SaveMaterial records the selected material so the next run starts with
// it. Only the file's own values are rewritten; flag overrides of this run
// are not persisted.
func SaveMaterial(name string) error {
	return saveMaterialTo(SavePath(), name)
}

func saveMaterialTo(path, name string) error {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	cfg.Lathe.Material = name
	return cfg.SaveTo(path)
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
