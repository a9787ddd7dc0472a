package teams

import (
	"testing"

	"pokedex-service/internal/domain"
)

func team(id, name string, members ...string) domain.Team {
	t := domain.Team{ID: id, Name: name, Members: []domain.Summary{}}
	for _, m := range members {
		t.Members = append(t.Members, domain.Summary{Name: m})
	}
	return t
}

func TestUpsertAppendsNewTeams(t *testing.T) {
	s := NewStore()
	s.Upsert(team("a", "First"))
	s.Upsert(team("b", "Second"))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(list))
	}
	if list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	s := NewStore()
	s.Upsert(team("a", "First"))
	s.Upsert(team("b", "Second"))

	s.Upsert(team("a", "Renamed"))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("replace must not grow the collection, got %d", len(list))
	}
	if list[0].ID != "a" || list[0].Name != "Renamed" {
		t.Fatalf("expected in-place replace at position 0, got %+v", list[0])
	}
	if list[1].ID != "b" {
		t.Fatalf("expected b to keep position 1")
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Upsert(team("a", "First"))

	if !s.Remove("a") {
		t.Fatalf("expected remove to report success")
	}
	if s.Remove("a") {
		t.Fatalf("expected second remove to report absence")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Upsert(team("a", "First", "pikachu"))

	got, ok := s.Get("a")
	if !ok {
		t.Fatalf("expected team to exist")
	}
	got.Members[0].Name = "mutated"

	again, _ := s.Get("a")
	if again.Members[0].Name != "pikachu" {
		t.Fatalf("store must not expose internal state")
	}
}

func TestGetNotFound(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}
