package config

// serverFile is the on-disk schema of revet.yaml.
type serverFile struct {
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Cache struct {
		// TickInterval is the wall-time period between logical clock ticks,
		// in Go duration syntax.
		TickInterval string `yaml:"tickInterval"`
		// RefreshTicks is the freshness window in ticks. Zero revalidates on
		// every read; a negative value disables revalidation.
		RefreshTicks *int64 `yaml:"refreshTicks"`
	} `yaml:"cache"`
	Projects struct {
		Root  string `yaml:"root"`
		Users string `yaml:"users"`
	} `yaml:"projects"`
	Index struct {
		QueueSize int `yaml:"queueSize"`
	} `yaml:"index"`
}
