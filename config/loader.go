package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// File is the on-disk shape of a config override. Sections that are absent
// keep their current values.
type File struct {
	Window       *Config               `yaml:"window"`
	Audio        *AudioConfig          `yaml:"audio"`
	Player       *PlayerConfig         `yaml:"player"`
	Enemy        *EnemyConfig          `yaml:"enemy"`
	PlayerBullet *BulletConfig         `yaml:"player_bullet"`
	EnemyBullet  *BulletConfig         `yaml:"enemy_bullet"`
	Explosion    *ExplosionConfig      `yaml:"explosion"`
	Score        *ScoreConfig          `yaml:"score"`
	Title        *TitleScreenConfig    `yaml:"title"`
	GameOver     *GameOverScreenConfig `yaml:"game_over"`
	Background   *BackgroundConfig     `yaml:"background"`
	Collision    *CollisionConfig      `yaml:"collision"`
	Debug        *DebugConfig          `yaml:"debug"`
}

func globals() *File {
	return &File{
		Window:       C,
		Audio:        &Audio,
		Player:       &Player,
		Enemy:        &Enemy,
		PlayerBullet: &PlayerBullet,
		EnemyBullet:  &EnemyBullet,
		Explosion:    &Explosion,
		Score:        &Score,
		Title:        &TitleScreen,
		GameOver:     &GameOverScreen,
		Background:   &Background,
		Collision:    &Collision,
		Debug:        &Debug,
	}
}

// Apply merges a YAML document into the global configuration.
func Apply(data []byte) error {
	if err := yaml.Unmarshal(data, globals()); err != nil {
		return err
	}
	if C.Width > 0 && C.Height > 0 {
		Field.Width = float64(C.Width) / float64(C.Height)
	}
	return nil
}

// Load applies configuration overrides and returns where they came from.
// Search order: customPath -> ~/.flyshoot/config.yaml -> ./configs/flyshoot.yaml -> embedded default
func Load(customPath string) (string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := Apply(data); err == nil {
				return userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "flyshoot.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if err := Apply(data); err == nil {
			return local, nil
		}
	}

	// Use embedded default YAML
	if err := Apply(defaultYAML); err != nil {
		Reset()
		return "built-in", nil
	}
	return "embedded", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flyshoot", filename)
}

// AssetDir picks the assets directory: the explicit path when given, else
// ~/.flyshoot/assets when it exists. An empty result means there are no
// assets and the game draws placeholder shapes without sound.
func AssetDir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if dir := userConfigPath("assets"); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// Dump renders the current configuration as YAML.
func Dump() ([]byte, error) {
	return yaml.Marshal(globals())
}
