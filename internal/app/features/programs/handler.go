// internal/app/features/programs/handler.go
package programs

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the public program listing, grouped by status.
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

type programsVM struct {
	viewdata.BaseVM
	Loading   bool
	Ongoing   []models.Program
	Upcoming  []models.Program
	Completed []models.Program
}

// ServeList handles GET /program.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := programsVM{
		BaseVM:  viewdata.NewBaseVM(r, "Program Kerja", "/"),
		Loading: st.Loading,
	}
	for _, p := range st.Programs {
		switch p.Status {
		case models.ProgramUpcoming:
			vm.Upcoming = append(vm.Upcoming, p)
		case models.ProgramCompleted:
			vm.Completed = append(vm.Completed, p)
		default:
			vm.Ongoing = append(vm.Ongoing, p)
		}
	}

	templates.Render(w, r, "programs_list", vm)
}
