package config

// FeedConfig locates the GTFS static bundle.
type FeedConfig struct {
	ZipPath   string `yaml:"zipPath"`
	StaticURL string `yaml:"staticURL" validate:"omitempty,url"`
}

// OutputConfig controls where timetables are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// RealtimeConfig points at an optional GTFS-RT TripUpdates feed.
type RealtimeConfig struct {
	TripUpdatesURL string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Feed     FeedConfig     `yaml:"feed"`
	Output   OutputConfig   `yaml:"output"`
	Realtime RealtimeConfig `yaml:"realtime"`
}
