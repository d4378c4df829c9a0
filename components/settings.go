package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton for persisted player preferences.
type SettingsData struct {
	MusicVolume float64
	SFXVolume   float64
	Fullscreen  bool
	Difficulty  string // preset name in the difficulty table
	Dirty       bool   // needs a save
}

var Settings = donburi.NewComponentType[SettingsData]()
