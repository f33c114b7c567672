// Package sound plays the audio the simulation queued during a tick.
package sound

import (
	"sync"

	"github.com/automoto/flyshoot/assets"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// The audio context may only be created once per process.
var (
	audioContext *audio.Context
	contextOnce  sync.Once
)

func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// Mixer owns the music player and fires one-shot sounds.
type Mixer struct {
	loader *assets.AudioLoader

	music   *audio.Player
	musicID cfg.MusicID

	musicVolume float64
	sfxVolume   float64
	preloaded   bool
}

func NewMixer(lib *assets.Library) *Mixer {
	return &Mixer{
		loader:      assets.NewAudioLoader(sharedContext(), lib),
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// Drain plays and clears the world's pending sounds and music commands.
func (m *Mixer) Drain(w donburi.World) {
	e, ok := components.Audio.First(w)
	if !ok {
		return
	}
	queue := components.Audio.Get(e)

	for _, cmd := range queue.PendingMusic {
		if cmd.Play {
			m.playMusic(cmd.ID)
		} else if m.musicID == cmd.ID {
			m.stopMusic()
		}
	}
	for _, req := range queue.PendingSFX {
		m.playSFX(req)
	}
	queue.PendingMusic = queue.PendingMusic[:0]
	queue.PendingSFX = queue.PendingSFX[:0]
}

// Preload decodes the sound effects once the assets are in.
func (m *Mixer) Preload() {
	if m.preloaded {
		return
	}
	m.preloaded = true
	m.loader.PreloadSFX()
}

func (m *Mixer) playSFX(req components.SoundRequest) {
	volume := m.sfxVolume * req.Volume
	if volume <= 0 {
		return
	}
	player, err := m.loader.LoadSFX(req.ID)
	if err != nil {
		log.Debug("sound skipped", "error", err)
		return
	}
	player.SetVolume(volume)
	player.Play()
}

func (m *Mixer) playMusic(id cfg.MusicID) {
	if m.music != nil && m.musicID == id {
		return
	}
	m.stopMusic()

	player, err := m.loader.LoadMusic(id)
	if err != nil {
		log.Debug("music skipped", "error", err)
		return
	}
	player.SetVolume(m.musicVolume)
	player.Play()
	m.music = player
	m.musicID = id
}

func (m *Mixer) stopMusic() {
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
	}
	m.musicID = cfg.MusicNone
}

func (m *Mixer) SetMusicVolume(v float64) {
	m.musicVolume = v
	if m.music != nil {
		m.music.SetVolume(v)
	}
}

func (m *Mixer) SetSFXVolume(v float64) {
	m.sfxVolume = v
}
