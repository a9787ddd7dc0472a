package fixture

import (
	"context"
	"testing"

	"pokedex-service/internal/providers"
)

func TestFetchListPaginates(t *testing.T) {
	s := New()

	first, err := s.FetchList(context.Background(), 4, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(first.Items))
	}
	if !first.HasNext {
		t.Fatalf("expected more pages after the first")
	}

	second, err := s.FetchList(context.Background(), 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.PageIndex != 1 {
		t.Fatalf("expected page index 1, got %d", second.PageIndex)
	}
	if first.Items[0].Name == second.Items[0].Name {
		t.Fatalf("expected distinct pages")
	}
}

func TestFetchListBeyondEndIsEmpty(t *testing.T) {
	s := New()
	page, err := s.FetchList(context.Background(), 10, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.HasNext {
		t.Fatalf("expected empty final page, got %+v", page)
	}
}

func TestFetchDetailByIDAndName(t *testing.T) {
	s := New()

	byName, err := s.FetchDetail(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byID, err := s.FetchDetail(context.Background(), "25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byName.ID != byID.ID {
		t.Fatalf("expected same record by id and name")
	}
}

func TestFetchDetailUnknownIsFetchError(t *testing.T) {
	s := New()
	_, err := s.FetchDetail(context.Background(), "missingno")
	fetchErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", fetchErr.StatusCode)
	}
}

func TestFetchSpeciesCarriesGenusAndFlavor(t *testing.T) {
	s := New()
	species, err := s.FetchSpecies(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(species.Genera) == 0 || species.Genera[0].Text == "" {
		t.Fatalf("expected genus data, got %+v", species.Genera)
	}
	if len(species.FlavorTextEntries) == 0 {
		t.Fatalf("expected flavor text entries")
	}
}
