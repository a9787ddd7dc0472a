package providers

import (
	"context"

	"pokedex-service/internal/domain"
)

// ListSource fetches one page of the upstream Pokémon listing.
// Offsets are item offsets, not page numbers; limit is the page size.
type ListSource interface {
	FetchList(ctx context.Context, limit, offset int) (domain.ListPage, error)
}

// DetailSource fetches the full record for a single Pokémon by numeric id or
// name.
type DetailSource interface {
	FetchDetail(ctx context.Context, idOrName string) (domain.Detail, error)
}

// SpeciesSource fetches the cross-version species record for a species id.
type SpeciesSource interface {
	FetchSpecies(ctx context.Context, id int) (domain.Species, error)
}

// DataSource combines all upstream capabilities.
type DataSource interface {
	ListSource
	DetailSource
	SpeciesSource
}
