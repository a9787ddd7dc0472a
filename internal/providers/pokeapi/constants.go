package pokeapi

import "time"

const (
	defaultBaseURL     = "https://pokeapi.co/api/v2"
	defaultHTTPTimeout = 10 * time.Second
	// PokeAPI asks clients to be polite; the catalog needs at most a few
	// hundred requests for a full warmup.
	defaultRequestsPerMinute = 600
)
