// Package config handles simulator configuration loading and management.
package config

import "time"

// Config holds all simulator settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Lathe    LatheConfig    `yaml:"lathe"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds cutting sound settings.
type AudioConfig struct {
	MasterVolume float64       `yaml:"master_volume"`
	SFXVolume    float64       `yaml:"sfx_volume"`
	Muted        bool          `yaml:"muted"`
	CutSound     string        `yaml:"cut_sound"`    // WAV file played while material is removed
	CutInterval  time.Duration `yaml:"cut_interval"` // Minimum gap between cut sounds
}

// LatheConfig holds simulation settings that are safe to change at runtime.
type LatheConfig struct {
	SpindleSpeed float32 `yaml:"spindle_speed"` // Degrees per frame
	Material     string  `yaml:"material"`      // Name of the starting material
}

// MaterialConfig names the PBR texture maps of a workpiece surface.
type MaterialConfig struct {
	Name      string `yaml:"name"`
	Albedo    string `yaml:"albedo"` // Relative to AssetsConfig.TextureDir
	Normal    string `yaml:"normal"` // Optional maps below fall back to neutral values
	Metallic  string `yaml:"metallic"`
	Roughness string `yaml:"roughness"`
	AO        string `yaml:"ao"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	TextureDir     string           `yaml:"texture_dir"`
	MaxTextureSize int              `yaml:"max_texture_size"`
	Materials      []MaterialConfig `yaml:"materials"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.6,
			Muted:        false,
			CutSound:     "resources/sounds/cut.wav",
			CutInterval:  80 * time.Millisecond,
		},
		Lathe: LatheConfig{
			SpindleSpeed: 0.8,
			Material:     "rusted_iron",
		},
		Assets: AssetsConfig{
			TextureDir:     "resources/textures",
			MaxTextureSize: 2048,
			Materials: []MaterialConfig{
				pbrMaterial("rusted_iron"),
				pbrMaterial("wood"),
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// pbrMaterial names the five maps of a material stored under pbr/<name>/.
func pbrMaterial(name string) MaterialConfig {
	dir := "pbr/" + name + "/"
	return MaterialConfig{
		Name:      name,
		Albedo:    dir + "albedo.png",
		Normal:    dir + "normal.png",
		Metallic:  dir + "metallic.png",
		Roughness: dir + "roughness.png",
		AO:        dir + "ao.png",
	}
}

// MaterialIndex returns the position of the named material, or 0 when the
// name is unknown.
func (c *Config) MaterialIndex(name string) int {
	for i, m := range c.Assets.Materials {
		if m.Name == name {
			return i
		}
	}
	return 0
}
