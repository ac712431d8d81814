// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	"github.com/imadiksi/orgsite/internal/app/system/ranks"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the about page with the leadership highlight.
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

// leaderSlot is one highlighted leadership position on the about page.
type leaderSlot struct {
	Label  string
	Member models.OrganizationMember
}

type aboutVM struct {
	viewdata.BaseVM
	Leaders []leaderSlot
}

// ServeAbout handles GET /tentang. Leadership slots are filled by rank
// from active core (division-less) members. Ketua umum and wakil ketua
// are single slots; every sekretaris and bendahara is listed. A vacant
// rank simply renders no slot.
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()

	vm := aboutVM{
		BaseVM: viewdata.NewBaseVM(r, "Tentang Kami", "/"),
	}

	vm.Leaders = leadershipSlots(st.OrganizationMembers)

	templates.Render(w, r, "about", vm)
}

func leadershipSlots(members []models.OrganizationMember) []leaderSlot {
	var slots []leaderSlot
	for _, rank := range ranks.Ordered() {
		if rank == models.RankAnggota {
			continue
		}
		single := rank == models.RankKetuaUmum || rank == models.RankWakilKetua
		for _, m := range members {
			if !m.IsActive || !m.IsCore() || m.Rank != rank {
				continue
			}
			slots = append(slots, leaderSlot{
				Label:  ranks.Label(rank),
				Member: m,
			})
			if single {
				break
			}
		}
	}
	return slots
}
