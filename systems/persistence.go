package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the preview settings stored on disk
type SavedSettings struct {
	TimeScaleIndex int     `json:"timeScaleIndex"`
	ShowSkirt      bool    `json:"showSkirt"`
	Debug          bool    `json:"debug"`
	HeadLook       float64 `json:"headLook"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.PreviewSettings.PersistenceAppTag,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with a nil error means
// nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.PreviewSettings.SettingsItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.PreviewSettings.SettingsItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// DefaultSettings returns the preview settings used before anything is saved.
func DefaultSettings() components.PreviewSettingsData {
	d := cfg.PreviewSettings
	return components.PreviewSettingsData{
		TimeScaleIndex: d.DefaultTimeScale,
		ShowSkirt:      d.DefaultShowSkirt,
		Debug:          d.DefaultShowDebug,
		HeadLook:       d.DefaultHeadLook,
	}
}

// ApplySavedSettings copies loaded settings onto the settings component,
// ignoring out-of-range values.
func ApplySavedSettings(s *components.PreviewSettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.TimeScaleIndex >= 0 && saved.TimeScaleIndex < len(cfg.PreviewSettings.TimeScales) {
		s.TimeScaleIndex = saved.TimeScaleIndex
	}
	s.ShowSkirt = saved.ShowSkirt
	s.Debug = saved.Debug
	if saved.HeadLook >= 0 && saved.HeadLook <= 1 {
		s.HeadLook = saved.HeadLook
	}
}

// UpdatePersistence writes the settings back whenever they changed.
func UpdatePersistence(e *ecs.ECS) {
	entry, ok := components.PreviewSettings.First(e.World)
	if !ok {
		return
	}
	s := components.PreviewSettings.Get(entry)
	if !s.Dirty {
		return
	}
	s.Dirty = false
	_ = SaveSettings(&SavedSettings{
		TimeScaleIndex: s.TimeScaleIndex,
		ShowSkirt:      s.ShowSkirt,
		Debug:          s.Debug,
		HeadLook:       s.HeadLook,
	})
}
