package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Config struct {
	Theme     string `json:"theme"`
	Sound     bool   `json:"sound"`
	Music     bool   `json:"music"`
	MusicPath string `json:"music_path,omitempty"`
	Volume    int    `json:"volume"`
	Shadow    bool   `json:"shadow"`
	FPS       int    `json:"fps"`
}

func defaultConfig() Config {
	return Config{
		Theme:  themes[0].Name,
		Sound:  true,
		Music:  false,
		Volume: 70,
		Shadow: true,
		FPS:    60,
	}
}

// normalize clamps values a hand-edited file may have broken.
func (c Config) normalize() Config {
	if _, ok := themeByName(c.Theme); !ok {
		c.Theme = themes[0].Name
	}
	c.Volume = clampVolumePercent(c.Volume)
	if c.FPS < 10 {
		c.FPS = 10
	}
	if c.FPS > 240 {
		c.FPS = 240
	}
	return c
}

// loadConfig reads path on top of the defaults. A missing file is not an
// error; exists reports whether one was found.
func loadConfig(path string) (config Config, exists bool, err error) {
	config = defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, false, nil
	}
	if err != nil {
		return config, false, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return defaultConfig(), true, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config.normalize(), true, nil
}

func saveConfig(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "consoletris", "config.json"), nil
}

func clampVolumePercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func volumeFromPercent(value int) float64 {
	return float64(clampVolumePercent(value)) / 100
}
