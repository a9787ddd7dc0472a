// Package teambuilder owns the in-progress team being edited. Invariant
// violations on membership (full team, duplicate, missing member) are
// expected interaction edge cases and no-op silently; "saved" is a property
// of the collection, never of the editor.
package teambuilder

import (
	"strconv"
	"sync"

	"pokedex-service/internal/domain"
)

// DefaultTeamName seeds a fresh editor; the user renames at will.
const DefaultTeamName = "New Team"

// Editor holds the team currently being built. The id is generated once
// when editing starts and stays stable across edits and saves.
type Editor struct {
	mu   sync.Mutex
	team domain.Team
}

// NewEditor starts editing a fresh empty team.
func NewEditor() *Editor {
	e := &Editor{}
	e.reset()
	return e
}

// Team returns a snapshot of the current editing state.
func (e *Editor) Team() domain.Team {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.team.Clone()
}

// AddMember appends the summary to the member list. Silently no-ops when
// the team is full or the Pokémon is already a member.
func (e *Editor) AddMember(s domain.Summary) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.team.Members) >= domain.MaxTeamSize {
		return
	}
	if e.team.HasMember(s) {
		return
	}
	e.team.Members = append(e.team.Members, s)
}

// RemoveMember removes the member matching idOrName (numeric id or name).
// No-op when absent.
func (e *Editor) RemoveMember(idOrName string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, m := range e.team.Members {
		if m.Name == idOrName || strconv.Itoa(domain.SummaryID(m)) == idOrName {
			e.team.Members = append(e.team.Members[:i], e.team.Members[i+1:]...)
			return
		}
	}
}

// Rename replaces the team name. Blank names are permitted while editing;
// save-time policy lives at the boundary.
func (e *Editor) Rename(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.team.Name = name
}

// CanSave reports whether the current state is worth persisting.
func (e *Editor) CanSave() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.team.Members) > 0
}

// Save returns an immutable snapshot for the collection to upsert and
// resets the editor to a fresh empty team with a new id.
func (e *Editor) Save() domain.Team {
	e.mu.Lock()
	defer e.mu.Unlock()
	snapshot := e.team.Clone()
	e.reset()
	return snapshot
}

// Hydrate loads an existing team for editing, keeping its id.
func (e *Editor) Hydrate(team domain.Team) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.team = team.Clone()
}

// Discard abandons the current edit and starts a fresh team.
func (e *Editor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Editor) reset() {
	e.team = domain.Team{
		ID:      NewID(),
		Name:    DefaultTeamName,
		Members: []domain.Summary{},
	}
}
