package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envBrowsePageSize = "BROWSE_PAGE_SIZE"
	envBrowseInitial  = "BROWSE_INITIAL_VISIBLE"
	envBrowseStep     = "BROWSE_STEP"
	envExportDir      = "EXPORT_DIR"
	envPrefetchOn     = "PREFETCH_ENABLED"
	envPrefetchDelay  = "PREFETCH_RETRY_DELAY"

	defaultPort        = "4000"
	defaultProvider    = "pokeapi"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	// One upstream page per fetch; 200 keeps the warmup to about six calls
	// for the full catalog.
	defaultBrowsePageSize = 200
	defaultBrowseInitial  = 24
	defaultBrowseStep     = 12
	defaultExportDir      = "data/exports"
	defaultPrefetchOn     = true
	// Backoff floor between prefetch retries after an upstream failure.
	defaultPrefetchDelay = 30 * Duration(time.Second)
)
