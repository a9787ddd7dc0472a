// Package pokeapi implements the upstream PokeAPI data source.
//
// The API is a read-only JSON REST contract: an offset/limit paginated
// listing plus per-id detail and species records. Requests are throttled
// with a token bucket so a full catalog warmup stays polite.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL           string
	HTTPClient        *http.Client
	RequestsPerMinute int
}

// Client fetches Pokémon data from PokeAPI and maps it to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	limiter    *rate.Limiter
}

// NewClient constructs a PokeAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	rpm := resolveRequestsPerMinute(cfg.RequestsPerMinute)
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

// FetchList retrieves one page of the Pokémon listing.
func (c *Client) FetchList(ctx context.Context, limit, offset int) (domain.ListPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	endpoint := "/pokemon?" + params.Encode()

	var payload listResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return domain.ListPage{}, err
	}

	items := make([]domain.Summary, 0, len(payload.Results))
	for _, item := range payload.Results {
		items = append(items, mapSummary(item))
	}

	pageIndex := 0
	if limit > 0 {
		pageIndex = offset / limit
	}
	return domain.ListPage{
		Items:     items,
		HasNext:   payload.Next != nil,
		PageIndex: pageIndex,
	}, nil
}

// FetchDetail retrieves the full record for one Pokémon by id or name.
func (c *Client) FetchDetail(ctx context.Context, idOrName string) (domain.Detail, error) {
	endpoint := "/pokemon/" + url.PathEscape(idOrName)

	var payload detailResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return domain.Detail{}, err
	}
	return mapDetail(payload), nil
}

// FetchSpecies retrieves the species record for a species id.
func (c *Client) FetchSpecies(ctx context.Context, id int) (domain.Species, error) {
	endpoint := "/pokemon-species/" + strconv.Itoa(id)

	var payload speciesResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return domain.Species{}, err
	}
	return mapSpecies(payload), nil
}

func (c *Client) get(ctx context.Context, endpoint string, payload any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &providers.FetchError{Endpoint: endpoint, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &providers.FetchError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &providers.FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(payload); decodeErr != nil {
		return &providers.FetchError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	return nil
}
