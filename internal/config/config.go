// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Model    ModelConfig    `yaml:"model"`
	Audio    AudioConfig    `yaml:"audio"`
	Session  SessionConfig  `yaml:"session"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// ModelConfig holds head model asset settings.
type ModelConfig struct {
	// SearchDirs are scanned in order when resolving a model by name.
	SearchDirs []string `yaml:"search_dirs"`
	// File is the head mesh to load at startup; empty means the bundled
	// default name is looked up in SearchDirs.
	File string `yaml:"file"`
}

// AudioConfig holds interaction sound settings.
type AudioConfig struct {
	SFXVolume float32 `yaml:"sfx_volume"`
	Muted     bool    `yaml:"muted"`
}

// SessionConfig holds pain diary storage settings.
type SessionConfig struct {
	// DiaryPath is the YAML file recorded entries are persisted to. Empty
	// means diary.yaml under the config directory.
	DiaryPath string `yaml:"diary_path"`
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
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Model: ModelConfig{
			SearchDirs: []string{"assets/models", "."},
			File:       "",
		},
		Audio: AudioConfig{
			SFXVolume: 0.8,
			Muted:     false,
		},
		Session: SessionConfig{
			DiaryPath: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
