package teams

import (
	"encoding/json"
	"errors"
	"fmt"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/teambuilder"
)

// ImportedTeamName is the fallback for entries with a missing or invalid
// name.
const ImportedTeamName = "Imported Team"

// ImportError rejects a structurally unusable import payload. Per-entry
// problems never raise it; only a malformed top level does.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import teams: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import teams: %s", e.Reason)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// AsImportError attempts to unwrap an error into an ImportError.
func AsImportError(err error) (*ImportError, bool) {
	var importErr *ImportError
	if errors.As(err, &importErr) {
		return importErr, true
	}
	return nil, false
}

// ExportAll serializes the collection as a JSON array of teams. An empty
// collection exports as an empty array, never an error.
func (s *Store) ExportAll() ([]byte, error) {
	list := s.List()
	if list == nil {
		list = []domain.Team{}
	}
	return json.MarshalIndent(list, "", "  ")
}

// ImportAll replaces the entire collection with the teams decoded from
// data. The payload must be a JSON array; anything else fails with
// ImportError and leaves the collection untouched. Malformed entries are
// normalized rather than rejected: a bad id is regenerated, a bad name
// falls back to ImportedTeamName, bad members become an empty list.
func (s *Store) ImportAll(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ImportError{Reason: "payload is not a JSON array", Err: err}
	}

	imported := make([]domain.Team, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		team := normalizeEntry(entry)
		if _, dup := seen[team.ID]; dup {
			team.ID = teambuilder.NewID()
		}
		seen[team.ID] = struct{}{}
		imported = append(imported, team)
	}

	s.replaceAll(imported)
	return nil
}

// rawTeam tolerates arbitrary JSON in every field so one bad entry cannot
// sink the import.
type rawTeam struct {
	ID      json.RawMessage `json:"id"`
	Name    json.RawMessage `json:"name"`
	Members json.RawMessage `json:"members"`
}

func normalizeEntry(entry json.RawMessage) domain.Team {
	var raw rawTeam
	// A non-object entry decodes to zero fields and normalizes below.
	_ = json.Unmarshal(entry, &raw)

	team := domain.Team{Members: []domain.Summary{}}

	var id string
	if err := json.Unmarshal(raw.ID, &id); err != nil || id == "" {
		id = teambuilder.NewID()
	}
	team.ID = id

	var name string
	if err := json.Unmarshal(raw.Name, &name); err != nil || name == "" {
		name = ImportedTeamName
	}
	team.Name = name

	var members []domain.Summary
	if err := json.Unmarshal(raw.Members, &members); err == nil && members != nil {
		if len(members) > domain.MaxTeamSize {
			members = members[:domain.MaxTeamSize]
		}
		team.Members = members
	}

	return team
}
