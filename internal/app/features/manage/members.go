// internal/app/features/manage/members.go
package manage

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	orgmemberstore "github.com/imadiksi/orgsite/internal/app/store/orgmembers"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/ranks"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const membersBackURL = "/admin/manage/members"

type memberInput struct {
	Name     string `validate:"required,max=200" label:"Nama"`
	Position string `validate:"max=200" label:"Jabatan"`
	Division string `validate:"omitempty,objectid" label:"Divisi"`
}

type memberListVM struct {
	viewdata.BaseVM
	Members   []models.OrganizationMember
	Divisions []models.Division
}

type rankOption struct {
	Value string
	Label string
}

type memberFormVM struct {
	formutil.Base
	ID         string
	Member     models.OrganizationMember
	IsEdit     bool
	DivisionID string
	Divisions  []models.Division
	Ranks      []rankOption
}

func rankOptions() []rankOption {
	ordered := ranks.Ordered()
	opts := make([]rankOption, 0, len(ordered))
	for _, rk := range ordered {
		opts = append(opts, rankOption{Value: rk, Label: ranks.Label(rk)})
	}
	return opts
}

// ServeMembers handles GET /admin/manage/members.
func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()
	vm := memberListVM{
		BaseVM:    viewdata.NewBaseVM(r, "Kelola Pengurus", "/admin"),
		Members:   st.OrganizationMembers,
		Divisions: st.Divisions,
	}
	vm.Success = successFlash(r, "Pengurus")
	templates.Render(w, r, "manage_member_list", vm)
}

// ServeNewMember handles GET /admin/manage/members/new.
func (h *Handler) ServeNewMember(w http.ResponseWriter, r *http.Request) {
	vm := memberFormVM{
		Member:    models.OrganizationMember{Rank: models.RankAnggota, IsActive: true},
		Divisions: h.Content.State().Divisions,
		Ranks:     rankOptions(),
	}
	formutil.SetBase(&vm.Base, r, "Pengurus Baru", membersBackURL)
	templates.Render(w, r, "manage_member_form", vm)
}

// HandleCreateMember handles POST /admin/manage/members.
func (h *Handler) HandleCreateMember(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse member form failed", err, "Formulir tidak valid.", membersBackURL)
		return
	}

	m, divisionHex, err := memberFromForm(r)

	renderWithError := func(msg string) {
		vm := memberFormVM{
			Member:     m,
			DivisionID: divisionHex,
			Divisions:  h.Content.State().Divisions,
			Ranks:      rankOptions(),
		}
		formutil.SetBase(&vm.Base, r, "Pengurus Baru", membersBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_member_form", vm)
	}

	if err != nil {
		renderWithError("Urutan harus berupa angka.")
		return
	}
	in := memberInput{Name: m.Name, Position: m.Position, Division: divisionHex}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}
	if !ranks.IsValid(m.Rank) {
		renderWithError("Jenjang jabatan tidak dikenal.")
		return
	}

	uctx, ucancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer ucancel()

	photoURL, ok := h.memberPhoto(uctx, r, renderWithError)
	if !ok {
		return
	}
	m.PhotoURL = photoURL

	ctx, cancel := mutationContext(r)
	defer cancel()

	if _, err := h.Content.AddOrganizationMember(ctx, m); err != nil {
		h.ErrLog.LogServerError(w, r, "create member", err, "Gagal menyimpan pengurus.", membersBackURL)
		return
	}

	http.Redirect(w, r, membersBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditMember handles GET /admin/manage/members/{id}/edit.
func (h *Handler) ServeEditMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad member id", "Pengurus tidak ditemukan.", membersBackURL)
		return
	}

	st := h.Content.State()
	m, ok := findMember(st, id)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "member not in cache", "Pengurus tidak ditemukan.", membersBackURL)
		return
	}

	divisionHex := ""
	if m.DivisionID != nil {
		divisionHex = m.DivisionID.Hex()
	}

	vm := memberFormVM{
		ID:         id.Hex(),
		Member:     m,
		IsEdit:     true,
		DivisionID: divisionHex,
		Divisions:  st.Divisions,
		Ranks:      rankOptions(),
	}
	formutil.SetBase(&vm.Base, r, "Ubah Pengurus", membersBackURL)
	templates.Render(w, r, "manage_member_form", vm)
}

// HandleUpdateMember handles POST /admin/manage/members/{id}.
func (h *Handler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad member id", "Pengurus tidak ditemukan.", membersBackURL)
		return
	}
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse member form failed", err, "Formulir tidak valid.", membersBackURL)
		return
	}

	m, divisionHex, err := memberFromForm(r)

	renderWithError := func(msg string) {
		vm := memberFormVM{
			ID:         id.Hex(),
			Member:     m,
			IsEdit:     true,
			DivisionID: divisionHex,
			Divisions:  h.Content.State().Divisions,
			Ranks:      rankOptions(),
		}
		formutil.SetBase(&vm.Base, r, "Ubah Pengurus", membersBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_member_form", vm)
	}

	if err != nil {
		renderWithError("Urutan harus berupa angka.")
		return
	}
	in := memberInput{Name: m.Name, Position: m.Position, Division: divisionHex}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}
	if !ranks.IsValid(m.Rank) {
		renderWithError("Jenjang jabatan tidak dikenal.")
		return
	}

	uctx, ucancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer ucancel()

	photoURL, ok := h.memberPhoto(uctx, r, renderWithError)
	if !ok {
		return
	}

	in2 := orgmemberstore.UpdateInput{
		Name:       &m.Name,
		Position:   &m.Position,
		Rank:       &m.Rank,
		OrderIndex: &m.OrderIndex,
		IsActive:   &m.IsActive,

		// SetDivision always: an empty selection moves the member back
		// to the core leadership section.
		SetDivision: true,
		DivisionID:  m.DivisionID,
	}
	if photoURL != "" {
		in2.PhotoURL = &photoURL
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.UpdateOrganizationMember(ctx, id, in2); err != nil {
		h.ErrLog.LogServerError(w, r, "update member", err, "Gagal menyimpan pengurus.", membersBackURL)
		return
	}

	http.Redirect(w, r, membersBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeleteMember handles POST /admin/manage/members/{id}/delete.
func (h *Handler) HandleDeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad member id", "Pengurus tidak ditemukan.", membersBackURL)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.DeleteOrganizationMember(ctx, id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "delete member", err, "Gagal menghapus pengurus.", membersBackURL)
		return
	}

	http.Redirect(w, r, membersBackURL+"?success=deleted", http.StatusSeeOther)
}

func memberFromForm(r *http.Request) (models.OrganizationMember, string, error) {
	order, err := formInt(r, "order_index")

	m := models.OrganizationMember{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Position:   strings.TrimSpace(r.FormValue("position")),
		Rank:       strings.TrimSpace(r.FormValue("rank")),
		OrderIndex: order,
		IsActive:   r.FormValue("is_active") == "on",
	}

	divisionHex := strings.TrimSpace(r.FormValue("division_id"))
	if divisionHex != "" {
		if divID, derr := primitive.ObjectIDFromHex(divisionHex); derr == nil {
			m.DivisionID = &divID
		}
	}
	return m, divisionHex, err
}

func (h *Handler) memberPhoto(ctx context.Context, r *http.Request, renderWithError func(string)) (string, bool) {
	photoURL, err := h.uploadImage(ctx, r, "photo", "members")
	if err != nil {
		if isPolicyError(err) {
			renderWithError(err.Error())
			return "", false
		}
		h.Log.Error("member photo upload failed", zap.Error(err))
		renderWithError("Gagal mengunggah foto.")
		return "", false
	}
	return photoURL, true
}

func findMember(st content.State, id primitive.ObjectID) (models.OrganizationMember, bool) {
	for _, m := range st.OrganizationMembers {
		if m.ID == id {
			return m, true
		}
	}
	return models.OrganizationMember{}, false
}
