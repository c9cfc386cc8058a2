package systems

import (
	"testing"

	cfg "github.com/automoto/marionette/config"
)

func TestApplySavedSettings(t *testing.T) {
	s := DefaultSettings()
	ApplySavedSettings(&s, nil)
	if s != DefaultSettings() {
		t.Errorf("nil saved settings changed %+v", s)
	}

	ApplySavedSettings(&s, &SavedSettings{TimeScaleIndex: 1, ShowSkirt: false, Debug: true, HeadLook: 0.5})
	if s.TimeScaleIndex != 1 || s.ShowSkirt || !s.Debug || s.HeadLook != 0.5 {
		t.Errorf("valid settings not applied: %+v", s)
	}

	ApplySavedSettings(&s, &SavedSettings{TimeScaleIndex: len(cfg.PreviewSettings.TimeScales), HeadLook: 3})
	if s.TimeScaleIndex != 1 || s.HeadLook != 0.5 {
		t.Errorf("out of range values applied: %+v", s)
	}
}

func TestSaveWithoutPersistenceIsNoop(t *testing.T) {
	if gdataInitialized {
		t.Skip("persistence initialised by another test")
	}
	if err := SaveSettings(&SavedSettings{}); err != nil {
		t.Errorf("SaveSettings = %v", err)
	}
	saved, err := LoadSettings()
	if saved != nil || err != nil {
		t.Errorf("LoadSettings = %v, %v", saved, err)
	}
}
