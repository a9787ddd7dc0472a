package http

import (
	nethttp "net/http"
	"strconv"
)

// Browse returns the current browse window.
func (h *Handler) Browse(w nethttp.ResponseWriter, r *nethttp.Request) {
	view, err := h.catalog.Browse(r.Context())
	h.writeView(w, view, err)
}

// Search replaces the name filter.
func (h *Handler) Search(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid search payload")
		return
	}
	view, err := h.catalog.SetSearch(r.Context(), body.Name)
	h.writeView(w, view, err)
}

// Generation replaces the generation filter. Zero clears it.
func (h *Handler) Generation(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Generation int `json:"generation"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid generation payload")
		return
	}
	view, err := h.catalog.SetGeneration(r.Context(), body.Generation)
	h.writeView(w, view, err)
}

// ClearFilters drops both filters.
func (h *Handler) ClearFilters(w nethttp.ResponseWriter, r *nethttp.Request) {
	view, err := h.catalog.ClearFilters(r.Context())
	h.writeView(w, view, err)
}

// LoadMore grows the visible window by one step.
func (h *Handler) LoadMore(w nethttp.ResponseWriter, r *nethttp.Request) {
	view, err := h.catalog.LoadMore(r.Context())
	h.writeView(w, view, err)
}

// RetryList clears a held list error and resumes paging.
func (h *Handler) RetryList(w nethttp.ResponseWriter, r *nethttp.Request) {
	view, err := h.catalog.RetryList(r.Context())
	h.writeView(w, view, err)
}

// Detail returns the full record for one Pokémon by id or name.
func (h *Handler) Detail(w nethttp.ResponseWriter, r *nethttp.Request) {
	idOrName := r.PathValue("idOrName")
	if idOrName == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing pokemon id or name")
		return
	}
	detail, err := h.catalog.Detail(r.Context(), idOrName)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, detail)
}

// Species returns the species record for a Pokémon's species id.
func (h *Handler) Species(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		h.writeError(w, nethttp.StatusBadRequest, "species id must be a positive integer")
		return
	}
	species, err := h.catalog.Species(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, species)
}

// writeView renders a browse view, preferring partial data over a bare
// error: a failed page fetch still returns whatever resolved before it,
// with the error alongside.
func (h *Handler) writeView(w nethttp.ResponseWriter, view any, err error) {
	if err == nil {
		h.writeJSON(w, nethttp.StatusOK, view)
		return
	}
	h.writeJSON(w, nethttp.StatusBadGateway, map[string]any{
		"error": err.Error(),
		"view":  view,
	})
}
