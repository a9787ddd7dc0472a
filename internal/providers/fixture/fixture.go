// Package fixture provides a deterministic offline data source useful for
// local development and tests.
package fixture

import (
	"context"
	"fmt"
	"strconv"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/providers"
)

// Source serves a small static slice of the national dex.
type Source struct {
	entries []entry
}

type entry struct {
	id      int
	name    string
	types   []string
	height  int
	weight  int
	baseExp int
	genus   string
	flavor  string
}

// New creates a fixture source covering the classic starters plus a few
// cross-generation entries (so generation filtering has data to bite on).
func New() *Source {
	return &Source{
		entries: []entry{
			{1, "bulbasaur", []string{"grass", "poison"}, 7, 69, 64, "Seed Pokémon", "A strange seed was planted on its back at birth."},
			{2, "ivysaur", []string{"grass", "poison"}, 10, 130, 142, "Seed Pokémon", "When the bulb on its back grows large, it appears to lose the ability to stand on its hind legs."},
			{3, "venusaur", []string{"grass", "poison"}, 20, 1000, 263, "Seed Pokémon", "The plant blooms when it is absorbing solar energy."},
			{4, "charmander", []string{"fire"}, 6, 85, 62, "Lizard Pokémon", "Obviously prefers hot places."},
			{7, "squirtle", []string{"water"}, 5, 90, 63, "Tiny Turtle Pokémon", "After birth, its back swells and hardens into a shell."},
			{25, "pikachu", []string{"electric"}, 4, 60, 112, "Mouse Pokémon", "When several of these Pokémon gather, their electricity could build and cause lightning storms."},
			{152, "chikorita", []string{"grass"}, 9, 64, 64, "Leaf Pokémon", "A sweet aroma gently wafts from the leaf on its head."},
			{252, "treecko", []string{"grass"}, 5, 50, 62, "Wood Gecko Pokémon", "Small hooks on the bottom of its feet allow it to scale vertical walls."},
			{906, "sprigatito", []string{"grass"}, 4, 41, 62, "Grass Cat Pokémon", "Its fluffy fur is similar in composition to plants."},
		},
	}
}

// FetchList returns one page of the fixture listing.
func (s *Source) FetchList(ctx context.Context, limit, offset int) (domain.ListPage, error) {
	_ = ctx
	if limit <= 0 {
		limit = len(s.entries)
	}
	if offset < 0 || offset >= len(s.entries) {
		return domain.ListPage{Items: []domain.Summary{}, HasNext: false}, nil
	}

	end := offset + limit
	if end > len(s.entries) {
		end = len(s.entries)
	}

	items := make([]domain.Summary, 0, end-offset)
	for _, e := range s.entries[offset:end] {
		items = append(items, domain.Summary{
			ID:   e.id,
			Name: e.name,
			URL:  resourceURL("pokemon", e.id),
		})
	}

	pageIndex := 0
	if limit > 0 {
		pageIndex = offset / limit
	}
	return domain.ListPage{Items: items, HasNext: end < len(s.entries), PageIndex: pageIndex}, nil
}

// FetchDetail returns the full fixture record for an id or name.
func (s *Source) FetchDetail(ctx context.Context, idOrName string) (domain.Detail, error) {
	_ = ctx
	e, ok := s.find(idOrName)
	if !ok {
		return domain.Detail{}, &providers.FetchError{Endpoint: "/pokemon/" + idOrName, StatusCode: 404}
	}

	types := make([]domain.TypeSlot, 0, len(e.types))
	for i, name := range e.types {
		types = append(types, domain.TypeSlot{Slot: i + 1, Name: name})
	}
	return domain.Detail{
		ID:             e.id,
		Name:           e.name,
		Types:          types,
		Height:         e.height,
		Weight:         e.weight,
		BaseExperience: e.baseExp,
		SpriteURL:      fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png", e.id),
		SpeciesURL:     resourceURL("pokemon-species", e.id),
	}, nil
}

// FetchSpecies returns the fixture species record for an id.
func (s *Source) FetchSpecies(ctx context.Context, id int) (domain.Species, error) {
	_ = ctx
	e, ok := s.find(strconv.Itoa(id))
	if !ok {
		return domain.Species{}, &providers.FetchError{Endpoint: "/pokemon-species/" + strconv.Itoa(id), StatusCode: 404}
	}

	return domain.Species{
		FlavorTextEntries: []domain.FlavorText{
			{Text: e.flavor, LanguageCode: "en", VersionName: "red"},
		},
		Genera: []domain.Genus{
			{Text: e.genus, LanguageCode: "en"},
		},
		LocalizedNames: []domain.LocalizedName{
			{Name: e.name, LanguageCode: "en"},
		},
	}, nil
}

func (s *Source) find(idOrName string) (entry, bool) {
	for _, e := range s.entries {
		if e.name == idOrName || strconv.Itoa(e.id) == idOrName {
			return e, true
		}
	}
	return entry{}, false
}

func resourceURL(kind string, id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/%s/%d/", kind, id)
}
