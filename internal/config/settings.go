package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings holds the player-adjustable options. A settings file only needs to
// contain the keys it overrides; everything else keeps its default.
type Settings struct {
	ScreenWidth  int     `json:"screen_width"`
	ScreenHeight int     `json:"screen_height"`
	FPS          int     `json:"fps"`
	Difficulty   string  `json:"difficulty"`
	Fullscreen   bool    `json:"fullscreen"`
	MusicVolume  float64 `json:"music_volume"`
	SoundVolume  float64 `json:"sound_volume"`
	MusicEnabled bool    `json:"music_enabled"`
	SoundEnabled bool    `json:"sound_enabled"`
	SaveDir      string  `json:"save_dir"`
	Seed         int64   `json:"seed"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		FPS:          FPS,
		Difficulty:   "normal",
		MusicVolume:  0.5,
		SoundVolume:  0.5,
		MusicEnabled: true,
		SoundEnabled: true,
		SaveDir:      filepath.Join("data", "save_data"),
	}
}

// LoadSettings reads path and merges it over the defaults. A missing file is
// not an error: the defaults are returned as is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.clamp()
	return s, nil
}

// SaveSettings writes s to path as indented JSON, creating the directory.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (s *Settings) clamp() {
	s.MusicVolume = clamp01(s.MusicVolume)
	s.SoundVolume = clamp01(s.SoundVolume)
	if s.FPS <= 0 {
		s.FPS = FPS
	}
	if s.ScreenWidth <= 0 {
		s.ScreenWidth = ScreenWidth
	}
	if s.ScreenHeight <= 0 {
		s.ScreenHeight = ScreenHeight
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
