package components

import (
	cfg "github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
)

// SoundRequest is a one-shot sound queued by the simulation.
type SoundRequest struct {
	ID     cfg.SoundID
	Volume float64
}

// MusicCommand starts or stops a looping track.
type MusicCommand struct {
	ID   cfg.MusicID
	Play bool
}

// AudioData collects sound requests for the audio backend (singleton).
// The queues are drained after every tick.
type AudioData struct {
	PendingSFX   []SoundRequest
	PendingMusic []MusicCommand
}

var Audio = donburi.NewComponentType[AudioData]()

func (a *AudioData) QueueSFX(id cfg.SoundID, volume float64) {
	a.PendingSFX = append(a.PendingSFX, SoundRequest{ID: id, Volume: volume})
}

func (a *AudioData) QueueMusic(id cfg.MusicID, play bool) {
	a.PendingMusic = append(a.PendingMusic, MusicCommand{ID: id, Play: play})
}
