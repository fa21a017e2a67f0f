package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Lathe.SpindleSpeed != 0.8 {
		t.Errorf("expected spindle speed 0.8, got %f", cfg.Lathe.SpindleSpeed)
	}
	if cfg.Lathe.Material != "rusted_iron" {
		t.Errorf("expected material rusted_iron, got %s", cfg.Lathe.Material)
	}
	if len(cfg.Assets.Materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(cfg.Assets.Materials))
	}
	wood := cfg.Assets.Materials[1]
	if wood.Name != "wood" || wood.Albedo != "pbr/wood/albedo.png" || wood.AO != "pbr/wood/ao.png" {
		t.Errorf("unexpected wood material %+v", wood)
	}
	if cfg.Audio.CutInterval != 80*time.Millisecond {
		t.Errorf("expected cut interval 80ms, got %v", cfg.Audio.CutInterval)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1024
  height: 768
  fullscreen: true
  vsync: false

audio:
  master_volume: 0.5
  muted: true
  cut_interval: 150ms

lathe:
  spindle_speed: 2.5
  material: "wood"

assets:
  texture_dir: "/opt/lathe/textures"
  materials:
    - name: "brass"
      albedo: "brass.bmp"

logging:
  level: "debug"
  log_file: "lathe.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SFXVolume != 0.6 {
		t.Errorf("expected sfx volume to keep default 0.6, got %f", cfg.Audio.SFXVolume)
	}
	if cfg.Audio.CutInterval != 150*time.Millisecond {
		t.Errorf("expected cut interval 150ms, got %v", cfg.Audio.CutInterval)
	}
	if cfg.Lathe.SpindleSpeed != 2.5 {
		t.Errorf("expected spindle speed 2.5, got %f", cfg.Lathe.SpindleSpeed)
	}
	if len(cfg.Assets.Materials) != 1 || cfg.Assets.Materials[0].Name != "brass" {
		t.Errorf("expected materials [brass], got %+v", cfg.Assets.Materials)
	}
	if cfg.Logging.LogFile != "lathe.log" {
		t.Errorf("expected log file 'lathe.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny window", func(c *Config) { c.Graphics.Width = 1 }},
		{"negative spindle", func(c *Config) { c.Lathe.SpindleSpeed = -1 }},
		{"negative interval", func(c *Config) { c.Audio.CutInterval = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestMaterialIndex(t *testing.T) {
	cfg := Default()
	if got := cfg.MaterialIndex("wood"); got != 1 {
		t.Errorf("MaterialIndex(wood) = %d, want 1", got)
	}
	if got := cfg.MaterialIndex("unobtainium"); got != 0 {
		t.Errorf("MaterialIndex(unknown) = %d, want 0", got)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1920
				*flagHeight = 1080
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
					t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "material flag",
			setup: func() { *flagMaterial = "wood" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Lathe.Material != "wood" {
					t.Errorf("expected material wood, got %s", cfg.Lathe.Material)
				}
			},
			teardown: func() { *flagMaterial = "" },
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Audio.Muted {
					t.Error("expected audio muted with mute flag")
				}
			},
			teardown: func() { *flagMute = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Lathe.Material = "wood"
	cfg.Audio.CutInterval = 200 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Lathe.Material != "wood" {
		t.Errorf("expected material wood after reload, got %s", loaded.Lathe.Material)
	}
	if loaded.Audio.CutInterval != 200*time.Millisecond {
		t.Errorf("expected cut interval 200ms after reload, got %v", loaded.Audio.CutInterval)
	}
}

func TestSaveMaterialKeepsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  width: 1024\nlogging:\n  level: warn\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if err := saveMaterialTo(path, "wood"); err != nil {
		t.Fatalf("saveMaterialTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Lathe.Material != "wood" {
		t.Errorf("expected material wood, got %s", loaded.Lathe.Material)
	}
	if loaded.Graphics.Width != 1024 {
		t.Errorf("expected width 1024 kept from file, got %d", loaded.Graphics.Width)
	}
	if loaded.Logging.Level != "warn" {
		t.Errorf("expected level warn kept from file, got %s", loaded.Logging.Level)
	}
}

func TestSaveMaterialCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lathe-sim", "config.yaml")

	if err := saveMaterialTo(path, "rusted_iron"); err != nil {
		t.Fatalf("saveMaterialTo failed: %v", err)
	}

	loaded := Default()
	loaded.Lathe.Material = ""
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Lathe.Material != "rusted_iron" {
		t.Errorf("expected material rusted_iron, got %s", loaded.Lathe.Material)
	}
}

func TestSaveMaterialInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := saveMaterialTo(path, "wood"); err == nil {
		t.Error("expected error for unparseable config")
	}
}

func TestSavePath(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if got := SavePath(); got != filepath.Join(ConfigDir(), "config.yaml") {
		t.Errorf("SavePath() = %s, want the user config dir", got)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := SavePath(); got != "./config.yaml" {
		t.Errorf("SavePath() = %s, want ./config.yaml", got)
	}
}
