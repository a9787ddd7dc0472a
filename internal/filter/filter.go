// Package filter holds the pure list-filtering predicates and the
// incremental-reveal cursor used by the browse read model.
package filter

import (
	"strings"

	"pokedex-service/internal/domain"
)

// Criteria combines the two list filters. Zero values mean "no filter".
// Filters AND together.
type Criteria struct {
	Name       string `json:"name"`
	Generation int    `json:"generation"`
}

// IsZero reports whether no filter is selected.
func (c Criteria) IsZero() bool {
	return c.Name == "" && c.Generation == 0
}

// Apply returns the items passing every selected filter, preserving input
// order. Name matching is case-insensitive substring containment; the
// generation filter passes items whose derived id falls inside the selected
// range's inclusive bounds. An unknown generation matches nothing.
func Apply(items []domain.Summary, c Criteria) []domain.Summary {
	if c.IsZero() {
		out := make([]domain.Summary, len(items))
		copy(out, items)
		return out
	}

	needle := strings.ToLower(c.Name)
	min, max := 0, 0
	if c.Generation != 0 {
		r, ok := domain.RangeForGeneration(c.Generation)
		if !ok {
			return []domain.Summary{}
		}
		min, max = r.Min, r.Max
	}

	out := make([]domain.Summary, 0, len(items))
	for _, item := range items {
		if c.Generation != 0 {
			id := domain.SummaryID(item)
			if id < min || id > max {
				continue
			}
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}
