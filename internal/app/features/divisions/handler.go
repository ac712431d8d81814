// internal/app/features/divisions/handler.go
package divisions

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/imadiksi/orgsite/internal/app/content"
	uierrors "github.com/imadiksi/orgsite/internal/app/features/errors"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the public division pages.
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
	Loading   bool
	Divisions []models.Division
}

type detailVM struct {
	viewdata.BaseVM
	Division models.Division
	// Org-chart members assigned to this division, in display order.
	Members []models.OrganizationMember
}

// ServeList handles GET /divisi.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := listVM{
		BaseVM:    viewdata.NewBaseVM(r, "Divisi", "/"),
		Loading:   st.Loading,
		Divisions: st.Divisions,
	}
	templates.Render(w, r, "divisions_list", vm)
}

// ServeDetail handles GET /divisi/{slug}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	st := h.Content.State()
	for _, d := range st.Divisions {
		if d.Slug != slug {
			continue
		}

		vm := detailVM{
			BaseVM:   viewdata.NewBaseVM(r, d.Name, "/divisi"),
			Division: d,
		}
		for _, m := range st.OrganizationMembers {
			if m.DivisionID != nil && *m.DivisionID == d.ID && m.IsActive {
				vm.Members = append(vm.Members, m)
			}
		}
		templates.Render(w, r, "divisions_detail", vm)
		return
	}

	h.ErrLog.LogNotFound(w, r, "division not found", "Divisi tidak ditemukan.", "/divisi")
}
