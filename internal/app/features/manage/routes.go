// internal/app/features/manage/routes.go
package manage

import (
	"github.com/go-chi/chi/v5"
	"github.com/imadiksi/orgsite/internal/app/system/auth"
)

// Routes mounts the content management routes under the base path
// (typically "/admin/manage" from bootstrap). All of them are
// admin-only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Route("/posts", func(pr chi.Router) {
		pr.Get("/", h.ServePosts)
		pr.Get("/new", h.ServeNewPost)
		pr.Post("/", h.HandleCreatePost)
		pr.Get("/{id}/edit", h.ServeEditPost)
		pr.Post("/{id}", h.HandleUpdatePost)
		pr.Post("/{id}/delete", h.HandleDeletePost)
	})

	r.Route("/programs", func(pr chi.Router) {
		pr.Get("/", h.ServePrograms)
		pr.Get("/new", h.ServeNewProgram)
		pr.Post("/", h.HandleCreateProgram)
		pr.Get("/{id}/edit", h.ServeEditProgram)
		pr.Post("/{id}", h.HandleUpdateProgram)
		pr.Post("/{id}/delete", h.HandleDeleteProgram)
	})

	r.Route("/divisions", func(pr chi.Router) {
		pr.Get("/", h.ServeDivisions)
		pr.Get("/new", h.ServeNewDivision)
		pr.Post("/", h.HandleCreateDivision)
		pr.Get("/{id}/edit", h.ServeEditDivision)
		pr.Post("/{id}", h.HandleUpdateDivision)
		pr.Post("/{id}/delete", h.HandleDeleteDivision)
	})

	r.Route("/gallery", func(pr chi.Router) {
		pr.Get("/", h.ServeGallery)
		pr.Get("/new", h.ServeNewGalleryItem)
		pr.Post("/", h.HandleCreateGalleryItem)
		pr.Get("/{id}/edit", h.ServeEditGalleryItem)
		pr.Post("/{id}", h.HandleUpdateGalleryItem)
		pr.Post("/{id}/delete", h.HandleDeleteGalleryItem)
	})

	r.Route("/events", func(pr chi.Router) {
		pr.Get("/", h.ServeEvents)
		pr.Get("/new", h.ServeNewEvent)
		pr.Post("/", h.HandleCreateEvent)
		pr.Get("/{id}/edit", h.ServeEditEvent)
		pr.Post("/{id}", h.HandleUpdateEvent)
		pr.Post("/{id}/delete", h.HandleDeleteEvent)
	})

	r.Route("/hero-slides", func(pr chi.Router) {
		pr.Get("/", h.ServeHeroSlides)
		pr.Get("/new", h.ServeNewHeroSlide)
		pr.Post("/", h.HandleCreateHeroSlide)
		pr.Get("/{id}/edit", h.ServeEditHeroSlide)
		pr.Post("/{id}", h.HandleUpdateHeroSlide)
		pr.Post("/{id}/delete", h.HandleDeleteHeroSlide)
	})

	r.Route("/members", func(pr chi.Router) {
		pr.Get("/", h.ServeMembers)
		pr.Get("/new", h.ServeNewMember)
		pr.Post("/", h.HandleCreateMember)
		pr.Get("/{id}/edit", h.ServeEditMember)
		pr.Post("/{id}", h.HandleUpdateMember)
		pr.Post("/{id}/delete", h.HandleDeleteMember)
	})

	return r
}
