package config

// PreviewSettingsConfig contains the defaults for persisted preview settings
type PreviewSettingsConfig struct {
	TimeScales        []float64
	DefaultTimeScale  int // index into TimeScales
	DefaultShowSkirt  bool
	DefaultShowDebug  bool
	DefaultHeadLook   float64
	HeadLookStep      float64
	SettingsItemKey   string
	PersistenceAppTag string
}

// PreviewSettings is the global preview settings configuration
var PreviewSettings PreviewSettingsConfig

func init() {
	PreviewSettings = PreviewSettingsConfig{
		TimeScales:        []float64{0.1, 0.25, 0.5, 1.0, 2.0},
		DefaultTimeScale:  3,
		DefaultShowSkirt:  true,
		DefaultShowDebug:  false,
		DefaultHeadLook:   0,
		HeadLookStep:      0.25,
		SettingsItemKey:   "settings",
		PersistenceAppTag: "marionette",
	}
}
