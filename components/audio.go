package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context   *audio.Context
	SFXVolume float64 // 0.0 - 1.0

	// Synthesized PCM per sound id, generated at startup. A missing id
	// plays nothing.
	Samples map[cfg.SoundID][]byte

	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
