package members

import "github.com/go-chi/chi/v5"

// Routes mounts the directory pages. Typically:
// r.Mount("/members", members.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	return r
}
