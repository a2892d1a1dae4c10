package membersapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// route is one row of the handler table.
type route struct {
	method  string
	pattern string
	fn      http.HandlerFunc
}

// Routes mounts the members API. Typically:
// r.Mount("/api/members", membersapi.Routes(handler))
//
// The table keeps every endpoint visible in one place. Fixed paths
// come before the {id} routes so "roles" is never parsed as an ID.
func Routes(h *Handler) chi.Router {
	table := []route{
		{http.MethodGet, "/", h.HandleList},
		{http.MethodPost, "/", h.HandleCreate},
		{http.MethodGet, "/roles", h.HandleRoles},
		{http.MethodGet, "/by-role", h.HandleByRole},
		{http.MethodPost, "/bulk-activate", h.HandleBulkActivate},
		{http.MethodPost, "/bulk-deactivate", h.HandleBulkDeactivate},
		{http.MethodGet, "/{id}", h.HandleGet},
		{http.MethodPut, "/{id}", h.HandleUpdate},
		{http.MethodPatch, "/{id}", h.HandlePatch},
		{http.MethodDelete, "/{id}", h.HandleDelete},
		{http.MethodPost, "/{id}/toggle-active", h.HandleToggleActive},
	}

	r := chi.NewRouter()
	for _, rt := range table {
		r.Method(rt.method, rt.pattern, rt.fn)
	}
	return r
}
