// internal/app/features/gallery/handler.go
package gallery

import (
	"net/http"
	"sort"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the public photo gallery.
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

type galleryVM struct {
	viewdata.BaseVM
	Loading    bool
	Items      []models.GalleryItem
	Categories []string
	Active     string // currently selected category filter
}

// ServeGrid handles GET /galeri. An optional ?kategori= query filters
// the grid to one category.
func (h *Handler) ServeGrid(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()
	active := strings.TrimSpace(r.URL.Query().Get("kategori"))

	vm := galleryVM{
		BaseVM:  viewdata.NewBaseVM(r, "Galeri", "/"),
		Loading: st.Loading,
		Active:  active,
	}

	seen := map[string]bool{}
	for _, item := range st.Gallery {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			vm.Categories = append(vm.Categories, item.Category)
		}
		if active == "" || item.Category == active {
			vm.Items = append(vm.Items, item)
		}
	}
	sort.Strings(vm.Categories)

	templates.Render(w, r, "gallery_grid", vm)
}
