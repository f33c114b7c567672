package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/flyshoot/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes the library's sounds for an audio context
type AudioLoader struct {
	lib      *Library
	sfxCache map[cfg.SoundID][]byte // Decoded PCM, ready for a new player
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context, lib *Library) *AudioLoader {
	return &AudioLoader{
		lib:      lib,
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes every sound effect so the first shot does not stall.
func (l *AudioLoader) PreloadSFX() {
	for id := range cfg.Sound.SFXPaths {
		_, _ = l.decodeSFX(id)
	}
}

// LoadSFX returns a new player for a sound effect.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	decoded, err := l.decodeSFX(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *AudioLoader) decodeSFX(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}
	path := cfg.Sound.SFXPaths[id]
	data, ok := l.lib.sound(id)
	if !ok {
		return nil, fmt.Errorf("sound %s not loaded", path)
	}

	stream, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	l.sfxCache[id] = decoded
	return decoded, nil
}

// LoadMusic returns a looping player for a track.
func (l *AudioLoader) LoadMusic(id cfg.MusicID) (*audio.Player, error) {
	path := cfg.Sound.MusicPaths[id]
	data, ok := l.lib.track(id)
	if !ok {
		return nil, fmt.Errorf("music %s not loaded", path)
	}
	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
	}
	return l.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
}

func (l *AudioLoader) decode(path string, data []byte) (io.Reader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

func (l *Library) sound(id cfg.SoundID) ([]byte, bool) {
	if !l.Done() {
		return nil, false
	}
	data, ok := l.sfx[id]
	return data, ok
}

func (l *Library) track(id cfg.MusicID) ([]byte, bool) {
	if !l.Done() {
		return nil, false
	}
	data, ok := l.music[id]
	return data, ok
}
