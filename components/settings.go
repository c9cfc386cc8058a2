package components

import "github.com/yohamta/donburi"

// PreviewSettingsData stores the preview's user-tunable settings
type PreviewSettingsData struct {
	TimeScaleIndex int
	ShowSkirt      bool
	Debug          bool
	HeadLook       float64
	Dirty          bool // changed since the last save
}

var PreviewSettings = donburi.NewComponentType[PreviewSettingsData]()
