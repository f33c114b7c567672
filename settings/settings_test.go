package settings

import (
	"testing"

	cfg "github.com/automoto/flyshoot/config"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Settings
		wantErr bool
	}{
		{
			name: "full",
			data: `{"musicVolume":0.2,"sfxVolume":0.4,"muted":true,"fullscreen":true,"showHitboxes":true}`,
			want: Settings{MusicVolume: 0.2, SFXVolume: 0.4, Muted: true, Fullscreen: true, ShowHitboxes: true},
		},
		{
			name: "out of range volumes",
			data: `{"musicVolume":3,"sfxVolume":-1}`,
			want: Settings{MusicVolume: 1, SFXVolume: 0},
		},
		{
			name: "older file",
			data: `{"muted":true}`,
			want: Settings{MusicVolume: cfg.Audio.DefaultMusicVol, SFXVolume: cfg.Audio.DefaultSFXVol, Muted: true},
		},
		{
			name:    "garbage",
			data:    `not json`,
			want:    Defaults(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEffectiveVolumes(t *testing.T) {
	s := Settings{MusicVolume: 0.5, SFXVolume: 0.8}
	if s.EffectiveMusic() != 0.5 || s.EffectiveSFX() != 0.8 {
		t.Errorf("unmuted volumes = %v, %v", s.EffectiveMusic(), s.EffectiveSFX())
	}
	s.Muted = true
	if s.EffectiveMusic() != 0 || s.EffectiveSFX() != 0 {
		t.Errorf("muted volumes = %v, %v", s.EffectiveMusic(), s.EffectiveSFX())
	}
}

func TestNilStoreUsesDefaults(t *testing.T) {
	var s *Store
	if got := s.Load(); got != Defaults() {
		t.Errorf("Load() on nil store = %+v", got)
	}
	if err := s.Save(Defaults()); err != nil {
		t.Errorf("Save() on nil store failed: %v", err)
	}
}
