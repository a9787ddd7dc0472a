package config

// BrowseConfig controls list pagination and the visible window.
type BrowseConfig struct {
	PageSize       int
	InitialVisible int
	Step           int
}

func loadBrowse() BrowseConfig {
	return BrowseConfig{
		PageSize:       intEnvOrDefault(envBrowsePageSize, defaultBrowsePageSize),
		InitialVisible: intEnvOrDefault(envBrowseInitial, defaultBrowseInitial),
		Step:           intEnvOrDefault(envBrowseStep, defaultBrowseStep),
	}
}

// ExportConfig controls where team export files land.
type ExportConfig struct {
	Dir string
}

func loadExport() ExportConfig {
	return ExportConfig{
		Dir: envOrDefault(envExportDir, defaultExportDir),
	}
}

// PrefetchConfig controls the background catalog warmup.
type PrefetchConfig struct {
	Enabled    bool
	RetryDelay Duration
}

func loadPrefetch() PrefetchConfig {
	return PrefetchConfig{
		Enabled:    boolEnvOrDefault(envPrefetchOn, defaultPrefetchOn),
		RetryDelay: durationEnvOrDefault(envPrefetchDelay, defaultPrefetchDelay),
	}
}
