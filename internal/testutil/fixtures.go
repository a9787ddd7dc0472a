package testutil

import (
	"fmt"
	"time"

	"pokedex-service/internal/domain"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SampleSummary returns a minimal listing entry for the given id and name.
func SampleSummary(id int, name string) domain.Summary {
	return domain.Summary{
		ID:   id,
		Name: name,
		URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id),
	}
}

// SampleTeam builds a team fixture with a single member.
func SampleTeam(id, name string, memberID int, memberName string) domain.Team {
	return domain.Team{
		ID:      id,
		Name:    name,
		Members: []domain.Summary{SampleSummary(memberID, memberName)},
	}
}
