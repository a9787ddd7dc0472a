// Package teams coordinates the team builder, the saved collection, and the
// export/import surface.
package teams

import (
	"errors"
	"log/slog"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/export"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/teambuilder"
	teamstore "pokedex-service/internal/teams"
)

// ErrNotSavable rejects a save of a team with no members or a blank name.
var ErrNotSavable = errors.New("team needs a name and at least one member")

// ErrTeamNotFound rejects edits and deletes of unknown team ids.
var ErrTeamNotFound = errors.New("team not found")

// Service owns the current edit plus the saved collection.
type Service struct {
	editor  *teambuilder.Editor
	store   *teamstore.Store
	writer  *export.Writer
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewService constructs the teams service. The writer, recorder, and logger
// may be nil.
func NewService(writer *export.Writer, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		editor:  teambuilder.NewEditor(),
		store:   teamstore.NewStore(),
		writer:  writer,
		metrics: recorder,
		logger:  logger,
	}
}

// Current returns a snapshot of the team being edited.
func (s *Service) Current() domain.Team {
	return s.editor.Team()
}

// CanSave reports whether the current edit may be persisted.
func (s *Service) CanSave() bool {
	return s.editor.CanSave() && s.editor.Team().Name != ""
}

// AddMember adds a Pokémon to the edit. Full team and duplicate member are
// silent no-ops.
func (s *Service) AddMember(member domain.Summary) domain.Team {
	s.editor.AddMember(member)
	return s.editor.Team()
}

// RemoveMember drops a member by id or name. Absent member is a silent
// no-op.
func (s *Service) RemoveMember(idOrName string) domain.Team {
	s.editor.RemoveMember(idOrName)
	return s.editor.Team()
}

// Rename sets the edit's team name.
func (s *Service) Rename(name string) domain.Team {
	s.editor.Rename(name)
	return s.editor.Team()
}

// Save persists the current edit into the collection and resets the editor
// to a fresh team. Saving the same id again replaces it in place.
func (s *Service) Save() (domain.Team, error) {
	if !s.CanSave() {
		return domain.Team{}, ErrNotSavable
	}
	saved := s.editor.Save()
	s.store.Upsert(saved)
	s.metrics.RecordTeamOp("save")
	logging.Info(s.logger, "team saved",
		logging.FieldTeamID, saved.ID,
		logging.FieldCount, len(saved.Members))
	return saved, nil
}

// Discard abandons the current edit.
func (s *Service) Discard() domain.Team {
	s.editor.Discard()
	return s.editor.Team()
}

// Teams lists the saved collection in display order.
func (s *Service) Teams() []domain.Team {
	return s.store.List()
}

// Team retrieves one saved team.
func (s *Service) Team(id string) (domain.Team, bool) {
	return s.store.Get(id)
}

// Delete removes a saved team.
func (s *Service) Delete(id string) error {
	if !s.store.Remove(id) {
		return ErrTeamNotFound
	}
	s.metrics.RecordTeamOp("delete")
	logging.Info(s.logger, "team deleted", logging.FieldTeamID, id)
	return nil
}

// Edit loads a saved team into the editor, keeping its id so a later save
// replaces the original.
func (s *Service) Edit(id string) (domain.Team, error) {
	team, ok := s.store.Get(id)
	if !ok {
		return domain.Team{}, ErrTeamNotFound
	}
	s.editor.Hydrate(team)
	return s.editor.Team(), nil
}

// ExportAll serializes the collection as a JSON array.
func (s *Service) ExportAll() ([]byte, error) {
	data, err := s.store.ExportAll()
	if err != nil {
		return nil, err
	}
	s.metrics.RecordTeamOp("export")
	return data, nil
}

// ExportToFile writes the serialized collection to a timestamped file and
// returns its path.
func (s *Service) ExportToFile() (string, error) {
	data, err := s.ExportAll()
	if err != nil {
		return "", err
	}
	path, err := s.writer.WriteTeams(data)
	if err != nil {
		return "", err
	}
	logging.Info(s.logger, "teams exported",
		logging.FieldCount, s.store.Len(), logging.FieldPath, path)
	return path, nil
}

// ImportAll replaces the collection with the decoded payload. A payload
// that is not a JSON array fails with ImportError and leaves the collection
// untouched; malformed entries are normalized, never rejected.
func (s *Service) ImportAll(data []byte) ([]domain.Team, error) {
	if err := s.store.ImportAll(data); err != nil {
		logging.Warn(s.logger, "team import rejected", "error", err)
		return nil, err
	}
	s.metrics.RecordTeamOp("import")
	imported := s.store.List()
	logging.Info(s.logger, "teams imported", logging.FieldCount, len(imported))
	return imported, nil
}
