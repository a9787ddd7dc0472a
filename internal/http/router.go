package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)

	mux.HandleFunc("GET /pokemon", handler.Browse)
	mux.HandleFunc("POST /pokemon/search", handler.Search)
	mux.HandleFunc("POST /pokemon/generation", handler.Generation)
	mux.HandleFunc("POST /pokemon/filters/clear", handler.ClearFilters)
	mux.HandleFunc("POST /pokemon/more", handler.LoadMore)
	mux.HandleFunc("POST /pokemon/retry", handler.RetryList)
	mux.HandleFunc("GET /pokemon/{idOrName}", handler.Detail)
	mux.HandleFunc("GET /pokemon/{id}/species", handler.Species)

	mux.HandleFunc("GET /team", handler.CurrentTeam)
	mux.HandleFunc("POST /team/members", handler.AddMember)
	mux.HandleFunc("DELETE /team/members/{idOrName}", handler.RemoveMember)
	mux.HandleFunc("PUT /team/name", handler.RenameTeam)
	mux.HandleFunc("POST /team/save", handler.SaveTeam)
	mux.HandleFunc("POST /team/reset", handler.ResetTeam)

	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("GET /teams/export", handler.ExportTeams)
	mux.HandleFunc("POST /teams/export", handler.ExportTeamsToFile)
	mux.HandleFunc("POST /teams/import", handler.ImportTeams)
	mux.HandleFunc("GET /teams/{id}", handler.TeamByID)
	mux.HandleFunc("DELETE /teams/{id}", handler.DeleteTeam)
	mux.HandleFunc("POST /teams/{id}/edit", handler.EditTeam)

	return mux
}
