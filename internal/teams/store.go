// Package teams holds the persisted team collection and its JSON
// export/import codec.
package teams

import (
	"sync"

	"pokedex-service/internal/domain"
)

// Store keeps the saved teams in memory, ordered by save/import time.
// Replacing an existing id keeps its position.
type Store struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Team
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]domain.Team)}
}

// Upsert inserts the team when its id is unseen, otherwise replaces it in
// place.
func (s *Store) Upsert(team domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[team.ID]; !exists {
		s.order = append(s.order, team.ID)
	}
	s.byID[team.ID] = team.Clone()
}

// Remove deletes the team with the given id. Returns whether it existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[id]; !exists {
		return false
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get retrieves a team by id.
func (s *Store) Get(id string) (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.byID[id]
	if !ok {
		return domain.Team{}, false
	}
	return team.Clone(), true
}

// List returns a copy of the collection in display order.
func (s *Store) List() []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Team, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// Len reports how many teams are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// replaceAll swaps the whole collection. Used by import, which is
// all-or-nothing at the top level.
func (s *Store) replaceAll(teams []domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = make([]string, 0, len(teams))
	s.byID = make(map[string]domain.Team, len(teams))
	for _, team := range teams {
		s.order = append(s.order, team.ID)
		s.byID[team.ID] = team.Clone()
	}
}
