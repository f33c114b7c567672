// Package settings persists the player's audio and display preferences.
package settings

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/flyshoot/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Settings is the data stored on disk.
type Settings struct {
	MusicVolume  float64 `json:"musicVolume"`
	SFXVolume    float64 `json:"sfxVolume"`
	Muted        bool    `json:"muted"`
	Fullscreen   bool    `json:"fullscreen"`
	ShowHitboxes bool    `json:"showHitboxes"`
}

func Defaults() Settings {
	return Settings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// EffectiveMusic is the music volume after muting.
func (s Settings) EffectiveMusic() float64 {
	if s.Muted {
		return 0
	}
	return s.MusicVolume
}

func (s Settings) EffectiveSFX() float64 {
	if s.Muted {
		return 0
	}
	return s.SFXVolume
}

// Store reads and writes Settings in the per-user data directory.
type Store struct {
	m *gdata.Manager
}

func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open storage: %w", err)
	}
	return &Store{m: m}, nil
}

// Load returns the saved settings, or the defaults when nothing usable is
// stored. A nil store always yields the defaults.
func (s *Store) Load() Settings {
	if s == nil || s.m == nil {
		return Defaults()
	}
	data, err := s.m.LoadItem(itemKey)
	if err != nil {
		log.Warn("could not load settings", "error", err)
		return Defaults()
	}
	if len(data) == 0 {
		return Defaults()
	}
	settings, err := decode(data)
	if err != nil {
		log.Warn("could not parse saved settings", "error", err)
		return Defaults()
	}
	return settings
}

func (s *Store) Save(settings Settings) error {
	if s == nil || s.m == nil {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("settings: cannot serialize: %w", err)
	}
	if err := s.m.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}

// decode parses stored settings, keeping volumes within [0, 1]. Fields
// missing from older files keep their defaults.
func decode(data []byte) (Settings, error) {
	settings := Defaults()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Defaults(), err
	}
	settings.MusicVolume = clampVolume(settings.MusicVolume)
	settings.SFXVolume = clampVolume(settings.SFXVolume)
	return settings, nil
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
