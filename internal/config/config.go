package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	LogLevel  string
	LogFormat string
	PokeAPI   PokeAPIConfig
	Browse    BrowseConfig
	Export    ExportConfig
	Prefetch  PrefetchConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
		PokeAPI:   loadPokeAPI(),
		Browse:    loadBrowse(),
		Export:    loadExport(),
		Prefetch:  loadPrefetch(),
		Metrics:   loadMetrics(),
	}
}
