// internal/app/features/gallery/routes.go
package gallery

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGrid)
	return r
}
