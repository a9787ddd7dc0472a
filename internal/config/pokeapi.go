package config

import "time"

const (
	envPokeAPIBaseURL = "POKEAPI_BASE_URL"
	envPokeAPITimeout = "POKEAPI_TIMEOUT"
	envPokeAPIRPM     = "POKEAPI_REQUESTS_PER_MINUTE"
	envPokeAPIRetries = "POKEAPI_MAX_RETRIES"
	envPokeAPIDelay   = "POKEAPI_RETRY_DELAY"

	defaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"
	defaultPokeAPITimeout = 10 * Duration(time.Second)
	// Polite ceiling; a full catalog warmup needs a few hundred requests.
	defaultPokeAPIRPM     = 600
	defaultPokeAPIRetries = 3
	defaultPokeAPIDelay   = 500 * Duration(time.Millisecond)
)

// PokeAPIConfig controls how we talk to the upstream PokeAPI.
type PokeAPIConfig struct {
	BaseURL           string
	Timeout           Duration
	RequestsPerMinute int
	MaxRetries        int
	RetryDelay        Duration
}

func loadPokeAPI() PokeAPIConfig {
	return PokeAPIConfig{
		BaseURL:           envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		Timeout:           durationEnvOrDefault(envPokeAPITimeout, defaultPokeAPITimeout),
		RequestsPerMinute: intEnvOrDefault(envPokeAPIRPM, defaultPokeAPIRPM),
		MaxRetries:        intEnvOrDefault(envPokeAPIRetries, defaultPokeAPIRetries),
		RetryDelay:        durationEnvOrDefault(envPokeAPIDelay, defaultPokeAPIDelay),
	}
}
