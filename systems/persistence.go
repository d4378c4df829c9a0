package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
)

// SavedSettings is the settings blob stored on disk.
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Fullscreen  bool    `json:"fullscreen"`
	Difficulty  string  `json:"difficulty"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. Failure is non-fatal: settings just
// won't survive restarts.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "forestfall",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings reads settings from disk. Returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to disk.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes loaded settings into the audio globals, the
// window, and the Settings singleton.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	settings := GetOrCreateSettings(e)
	if saved == nil {
		return
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	ebiten.SetFullscreen(saved.Fullscreen)

	settings.MusicVolume = saved.MusicVolume
	settings.SFXVolume = saved.SFXVolume
	settings.Fullscreen = saved.Fullscreen
	if _, ok := cfg.Difficulty.Presets[saved.Difficulty]; ok {
		settings.Difficulty = saved.Difficulty
	}
}

// UpdatePersistence flushes the Settings singleton to disk when dirty.
func UpdatePersistence(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false

	_ = SaveSettings(&SavedSettings{
		MusicVolume: settings.MusicVolume,
		SFXVolume:   settings.SFXVolume,
		Fullscreen:  settings.Fullscreen,
		Difficulty:  settings.Difficulty,
	})
}

// GetOrCreateSettings returns the singleton Settings, creating with defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			MusicVolume: cfg.Audio.DefaultMusicVol,
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			Difficulty:  cfg.Difficulty.Default,
		})
	}
	return components.Settings.Get(entry)
}
