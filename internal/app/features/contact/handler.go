// internal/app/features/contact/handler.go
package contact

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the static contact page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type contactVM struct {
	viewdata.BaseVM
}

// ServeContact handles GET /kontak.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	vm := contactVM{
		BaseVM: viewdata.NewBaseVM(r, "Kontak", "/"),
	}
	templates.Render(w, r, "contact", vm)
}
