package systems

import (
	"bytes"
	"sync"

	"github.com/mossforge/forestfall/assets"
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSamples      map[cfg.SoundID][]byte
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	ambiencePlayer     *audio.Player
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and synthesizes every cue once.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSamples = assets.SynthesizeAll(cfg.Audio.SampleRate)
	})
}

// UpdateAudio drains the pending SFX queue. Runs unwrapped so UI sounds play
// while paused.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSample(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSample(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	sample, ok := globalSamples[soundID]
	if !ok {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(sample)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played at the end of the frame.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	GetOrCreateAudio(e).PendingSFX = append(GetOrCreateAudio(e).PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0).
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// StartAmbience begins the looping wind bed. Safe to call more than once.
func StartAmbience() {
	initGlobalAudio()

	if ambiencePlayer != nil {
		if !ambiencePlayer.IsPlaying() {
			ambiencePlayer.Play()
		}
		return
	}

	sample := assets.SynthesizeAmbience(cfg.Audio.SampleRate)
	loop := audio.NewInfiniteLoop(bytes.NewReader(sample), int64(len(sample)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		return
	}
	ambiencePlayer = player
	ambiencePlayer.SetVolume(globalMusicVolume)
	ambiencePlayer.Play()
}

// SetMusicVolume changes the ambience volume (0.0 - 1.0).
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if ambiencePlayer != nil {
		ambiencePlayer.SetVolume(volume)
	}
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			Samples:    globalSamples,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
