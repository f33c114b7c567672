package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a one-shot sound at the given volume.
func PlaySFX(w donburi.World, id cfg.SoundID, volume float64) {
	if a := audioQueue(w); a != nil {
		a.QueueSFX(id, volume)
	}
}

// PlayMusic starts a looping track. Starting the track that already plays
// keeps it going.
func PlayMusic(w donburi.World, id cfg.MusicID) {
	if a := audioQueue(w); a != nil {
		a.QueueMusic(id, true)
	}
}

func StopMusic(w donburi.World, id cfg.MusicID) {
	if a := audioQueue(w); a != nil {
		a.QueueMusic(id, false)
	}
}

func audioQueue(w donburi.World) *components.AudioData {
	e, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	return components.Audio.Get(e)
}
