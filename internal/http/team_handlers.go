package http

import (
	"io"
	nethttp "net/http"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/export"
)

const maxImportBytes = 1 << 20

// CurrentTeam returns the team being edited.
func (h *Handler) CurrentTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeTeamState(w)
}

// AddMember adds a Pokémon to the edit. A full team or duplicate member is
// a silent no-op that still returns the current state.
func (h *Handler) AddMember(w nethttp.ResponseWriter, r *nethttp.Request) {
	var member domain.Summary
	if err := decodeBody(r, &member); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid member payload")
		return
	}
	if member.Name == "" && domain.SummaryID(member) == 0 {
		h.writeError(w, nethttp.StatusBadRequest, "member needs an id or a name")
		return
	}
	h.teams.AddMember(member)
	h.writeTeamState(w)
}

// RemoveMember drops a member by id or name. Absent member is a silent
// no-op.
func (h *Handler) RemoveMember(w nethttp.ResponseWriter, r *nethttp.Request) {
	idOrName := r.PathValue("idOrName")
	if idOrName == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing member id or name")
		return
	}
	h.teams.RemoveMember(idOrName)
	h.writeTeamState(w)
}

// RenameTeam sets the edit's team name.
func (h *Handler) RenameTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid name payload")
		return
	}
	h.teams.Rename(body.Name)
	h.writeTeamState(w)
}

// SaveTeam persists the current edit into the collection.
func (h *Handler) SaveTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	saved, err := h.teams.Save()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusCreated, saved)
}

// ResetTeam abandons the current edit.
func (h *Handler) ResetTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.teams.Discard()
	h.writeTeamState(w)
}

// ListTeams returns the saved collection in display order.
func (h *Handler) ListTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.teams.Teams())
}

// TeamByID returns one saved team.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teams.Team(r.PathValue("id"))
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "team not found")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, team)
}

// DeleteTeam removes a saved team.
func (h *Handler) DeleteTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.teams.Delete(r.PathValue("id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "deleted"})
}

// EditTeam loads a saved team into the editor.
func (h *Handler) EditTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, err := h.teams.Edit(r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, team)
}

// ExportTeams streams the collection as a downloadable JSON file.
func (h *Handler) ExportTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	data, err := h.teams.ExportAll()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileNameAt(h.now())+`"`)
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(data); err != nil && h.logger != nil {
		h.logger.Error("failed to write export", "error", err)
	}
}

// ExportTeamsToFile writes the collection to a timestamped file server-side
// and returns its path.
func (h *Handler) ExportTeamsToFile(w nethttp.ResponseWriter, r *nethttp.Request) {
	path, err := h.teams.ExportToFile()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusCreated, map[string]string{"path": path})
}

// ImportTeams replaces the collection with the request body. A payload that
// is not a JSON array is rejected and the collection stays untouched.
func (h *Handler) ImportTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "unreadable import payload")
		return
	}
	imported, err := h.teams.ImportAll(data)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, imported)
}

// writeTeamState renders the editor state plus whether it may be saved.
func (h *Handler) writeTeamState(w nethttp.ResponseWriter) {
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"team":     h.teams.Current(),
		"can_save": h.teams.CanSave(),
	})
}
