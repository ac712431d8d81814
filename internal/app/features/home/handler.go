// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Content *content.Service
	Log     *zap.Logger
}

func NewHandler(svc *content.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Content: svc,
		Log:     logger,
	}
}

type homeVM struct {
	viewdata.BaseVM
	Loading    bool
	LoadErr    string
	HeroSlides []models.HeroSlide
	Posts      []models.Post
	Events     []models.Event
	Programs   []models.Program
}

// ServeRoot handles GET /. The page renders entirely from the cached
// content snapshot; a refresh failure shows the last good data with a
// notice instead of an error page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := homeVM{
		BaseVM:     viewdata.NewBaseVM(r, "Beranda", "/"),
		Loading:    st.Loading,
		LoadErr:    st.Err,
		HeroSlides: st.HeroSlides,
		Posts:      firstN(st.Posts, 3),
		Events:     firstN(st.Events, 3),
		Programs:   firstN(st.Programs, 3),
	}

	templates.Render(w, r, "home", vm)
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
