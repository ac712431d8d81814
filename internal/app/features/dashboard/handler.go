// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the admin dashboard: content counts, refresh status,
// and the manual refresh action.
type Handler struct {
	Content *content.Service
	Log     *zap.Logger
}

func NewHandler(svc *content.Service, logger *zap.Logger) *Handler {
	return &Handler{Content: svc, Log: logger}
}

type dashboardVM struct {
	viewdata.BaseVM
	Loading bool
	LoadErr string

	PostCount     int
	ProgramCount  int
	DivisionCount int
	GalleryCount  int
	EventCount    int
	SlideCount    int
	MemberCount   int
}

// ServeDashboard handles GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := dashboardVM{
		BaseVM:  viewdata.NewBaseVM(r, "Dasbor Admin", "/"),
		Loading: st.Loading,
		LoadErr: st.Err,

		PostCount:     len(st.Posts),
		ProgramCount:  len(st.Programs),
		DivisionCount: len(st.Divisions),
		GalleryCount:  len(st.Gallery),
		EventCount:    len(st.Events),
		SlideCount:    len(st.HeroSlides),
		MemberCount:   len(st.OrganizationMembers),
	}

	templates.Render(w, r, "dashboard", vm)
}

// HandleRefresh handles POST /admin/refresh. The refetch runs in the
// request but failures only mark the cache state; the admin always
// lands back on the dashboard where the state banner reports them.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), timeouts.Medium())
	defer cancel()

	if err := h.Content.RefreshAll(ctx); err != nil {
		h.Log.Warn("manual content refresh failed", zap.Error(err))
	} else {
		h.Log.Info("manual content refresh completed")
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
