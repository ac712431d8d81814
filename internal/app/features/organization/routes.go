// internal/app/features/organization/routes.go
package organization

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeChart)
	return r
}
