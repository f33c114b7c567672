package config

// SoundID represents a logical one-shot sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPlayerBullet
	SoundEnemyBullet
	SoundExplosion
	SoundStart
)

// MusicID represents a looping track
type MusicID int

const (
	MusicNone MusicID = iota
	MusicTitle
	MusicBackground
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int     `yaml:"sample_rate"`
	DefaultMusicVol   float64 `yaml:"default_music_volume"`
	DefaultSFXVol     float64 `yaml:"default_sfx_volume"`
	MusicFadeDuration int     `yaml:"music_fade_duration"` // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths, relative to the assets directory
type SoundConfig struct {
	SFXPaths   map[SoundID]string
	MusicPaths map[MusicID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 30,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundPlayerBullet: "player_bullet.ogg",
			SoundEnemyBullet:  "enemy_bullet.ogg",
			SoundExplosion:    "explosion.ogg",
			SoundStart:        "start.ogg",
		},
		MusicPaths: map[MusicID]string{
			MusicTitle:      "title.ogg",
			MusicBackground: "background.ogg",
		},
	}
}
