// Package http exposes the catalog and team-building operations over JSON
// endpoints.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"time"

	"pokedex-service/internal/app/catalog"
	teamsapp "pokedex-service/internal/app/teams"
	"pokedex-service/internal/prefetch"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/teams"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	catalog *catalog.Service
	teams   *teamsapp.Service
	warmer  *prefetch.Warmer
	logger  *slog.Logger
	now     nowFunc
}

// NewHandler constructs a Handler with defaults. The warmer may be nil when
// prefetch is disabled; readiness then only requires the process to be up.
func NewHandler(catalogSvc *catalog.Service, teamsSvc *teamsapp.Service, warmer *prefetch.Warmer, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalogSvc,
		teams:   teamsSvc,
		warmer:  warmer,
		logger:  logger,
		now:     time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the catalog warmup has produced servable data.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.warmer == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.warmer.Status()
	if !status.IsReady() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]any{
			"status": "warming",
			"warmup": status,
		})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"status": "ready",
		"warmup": status,
	})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps application errors to HTTP statuses: an upstream
// 404 passes through, any other upstream failure is a bad gateway, a
// malformed import payload is a bad request.
func (h *Handler) writeServiceError(w nethttp.ResponseWriter, err error) {
	if fetchErr, ok := providers.AsFetchError(err); ok {
		if fetchErr.StatusCode == nethttp.StatusNotFound {
			h.writeError(w, nethttp.StatusNotFound, "not found upstream")
			return
		}
		h.writeError(w, nethttp.StatusBadGateway, fetchErr.Error())
		return
	}
	if importErr, ok := teams.AsImportError(err); ok {
		h.writeError(w, nethttp.StatusBadRequest, importErr.Error())
		return
	}
	if errors.Is(err, teamsapp.ErrTeamNotFound) {
		h.writeError(w, nethttp.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, teamsapp.ErrNotSavable) {
		h.writeError(w, nethttp.StatusBadRequest, err.Error())
		return
	}
	h.writeError(w, nethttp.StatusInternalServerError, err.Error())
}

func decodeBody(r *nethttp.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
