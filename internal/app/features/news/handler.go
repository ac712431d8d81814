// internal/app/features/news/handler.go
package news

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/imadiksi/orgsite/internal/app/content"
	uierrors "github.com/imadiksi/orgsite/internal/app/features/errors"
	"github.com/imadiksi/orgsite/internal/app/system/htmlsanitize"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the public news listing and detail pages.
type Handler struct {
	Content *content.Service
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(svc *content.Service, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Content: svc,
		Log:     logger,
		ErrLog:  errLog,
	}
}

type listVM struct {
	viewdata.BaseVM
	Loading bool
	Posts   []models.Post
}

type detailVM struct {
	viewdata.BaseVM
	Post    models.Post
	Content template.HTML
}

// ServeList handles GET /berita.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := listVM{
		BaseVM:  viewdata.NewBaseVM(r, "Berita", "/"),
		Loading: st.Loading,
		Posts:   st.Posts,
	}
	templates.Render(w, r, "news_list", vm)
}

// ServeDetail handles GET /berita/{slug}. The post is looked up in the
// cached snapshot, the same data the listing was rendered from.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	st := h.Content.State()
	for _, p := range st.Posts {
		if p.Slug == slug {
			vm := detailVM{
				BaseVM:  viewdata.NewBaseVM(r, p.Title, "/berita"),
				Post:    p,
				Content: htmlsanitize.SanitizeHTML(p.Content),
			}
			templates.Render(w, r, "news_detail", vm)
			return
		}
	}

	h.ErrLog.LogNotFound(w, r, "post not found", "Berita tidak ditemukan.", "/berita")
}
