// internal/app/features/organization/handler.go
package organization

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the organization chart page.
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

// divisionGroup pairs a division with its assigned org-chart members.
type divisionGroup struct {
	Division models.Division
	Members  []models.OrganizationMember
}

type chartVM struct {
	viewdata.BaseVM
	Loading bool
	// Core leadership: active members with no division reference.
	Core   []models.OrganizationMember
	Groups []divisionGroup
}

// ServeChart handles GET /organisasi.
func (h *Handler) ServeChart(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := chartVM{
		BaseVM:  viewdata.NewBaseVM(r, "Struktur Organisasi", "/"),
		Loading: st.Loading,
	}

	byDivision := map[string][]models.OrganizationMember{}
	for _, m := range st.OrganizationMembers {
		if !m.IsActive {
			continue
		}
		if m.IsCore() {
			vm.Core = append(vm.Core, m)
			continue
		}
		key := m.DivisionID.Hex()
		byDivision[key] = append(byDivision[key], m)
	}

	// Divisions keep their own collection order; members within each
	// group keep the order_index order of the snapshot.
	for _, d := range st.Divisions {
		if members, ok := byDivision[d.ID.Hex()]; ok {
			vm.Groups = append(vm.Groups, divisionGroup{Division: d, Members: members})
		}
	}

	templates.Render(w, r, "organization_chart", vm)
}
