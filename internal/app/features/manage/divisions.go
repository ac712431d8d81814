// internal/app/features/manage/divisions.go
package manage

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	divisionstore "github.com/imadiksi/orgsite/internal/app/store/divisions"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const divisionsBackURL = "/admin/manage/divisions"

type divisionInput struct {
	Name        string `validate:"required,max=200" label:"Nama divisi"`
	Description string `validate:"max=2000" label:"Deskripsi"`
}

type divisionListVM struct {
	viewdata.BaseVM
	Divisions []models.Division
}

type divisionFormVM struct {
	formutil.Base
	ID       string
	Division models.Division
	IsEdit   bool
	// One work program per line; members as "Nama, Peran" per line.
	ProgramsText string
	MembersText  string
}

// ServeDivisions handles GET /admin/manage/divisions.
func (h *Handler) ServeDivisions(w http.ResponseWriter, r *http.Request) {
	vm := divisionListVM{
		BaseVM:    viewdata.NewBaseVM(r, "Kelola Divisi", "/admin"),
		Divisions: h.Content.State().Divisions,
	}
	vm.Success = successFlash(r, "Divisi")
	templates.Render(w, r, "manage_division_list", vm)
}

// ServeNewDivision handles GET /admin/manage/divisions/new.
func (h *Handler) ServeNewDivision(w http.ResponseWriter, r *http.Request) {
	var vm divisionFormVM
	formutil.SetBase(&vm.Base, r, "Divisi Baru", divisionsBackURL)
	templates.Render(w, r, "manage_division_form", vm)
}

// HandleCreateDivision handles POST /admin/manage/divisions.
func (h *Handler) HandleCreateDivision(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse division form failed", err, "Formulir tidak valid.", divisionsBackURL)
		return
	}

	d, programsText, membersText := divisionFromForm(r)

	renderWithError := func(msg string) {
		vm := divisionFormVM{Division: d, ProgramsText: programsText, MembersText: membersText}
		formutil.SetBase(&vm.Base, r, "Divisi Baru", divisionsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_division_form", vm)
	}

	in := divisionInput{Name: d.Name, Description: d.Description}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if _, err := h.Content.AddDivision(ctx, d); err != nil {
		if errors.Is(err, divisionstore.ErrDuplicateSlug) {
			renderWithError("Divisi dengan slug tersebut sudah ada.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create division", err, "Gagal menyimpan divisi.", divisionsBackURL)
		return
	}

	http.Redirect(w, r, divisionsBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditDivision handles GET /admin/manage/divisions/{id}/edit.
func (h *Handler) ServeEditDivision(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad division id", "Divisi tidak ditemukan.", divisionsBackURL)
		return
	}

	d, ok := findDivision(h.Content.State(), id)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "division not in cache", "Divisi tidak ditemukan.", divisionsBackURL)
		return
	}

	vm := divisionFormVM{
		ID:           id.Hex(),
		Division:     d,
		IsEdit:       true,
		ProgramsText: strings.Join(d.WorkPrograms, "\n"),
		MembersText:  divisionMembersText(d.Members),
	}
	formutil.SetBase(&vm.Base, r, "Ubah Divisi", divisionsBackURL)
	templates.Render(w, r, "manage_division_form", vm)
}

// HandleUpdateDivision handles POST /admin/manage/divisions/{id}.
func (h *Handler) HandleUpdateDivision(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad division id", "Divisi tidak ditemukan.", divisionsBackURL)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse division form failed", err, "Formulir tidak valid.", divisionsBackURL)
		return
	}

	d, programsText, membersText := divisionFromForm(r)

	renderWithError := func(msg string) {
		vm := divisionFormVM{ID: id.Hex(), Division: d, IsEdit: true, ProgramsText: programsText, MembersText: membersText}
		formutil.SetBase(&vm.Base, r, "Ubah Divisi", divisionsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_division_form", vm)
	}

	in := divisionInput{Name: d.Name, Description: d.Description}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	err = h.Content.UpdateDivision(ctx, id, divisionstore.UpdateInput{
		Name:         &d.Name,
		Slug:         &d.Slug,
		Description:  &d.Description,
		WorkPrograms: &d.WorkPrograms,
		Members:      &d.Members,
	})
	if err != nil {
		if errors.Is(err, divisionstore.ErrDuplicateSlug) {
			renderWithError("Divisi dengan slug tersebut sudah ada.")
			return
		}
		h.ErrLog.LogServerError(w, r, "update division", err, "Gagal menyimpan divisi.", divisionsBackURL)
		return
	}

	http.Redirect(w, r, divisionsBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeleteDivision handles POST /admin/manage/divisions/{id}/delete.
func (h *Handler) HandleDeleteDivision(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad division id", "Divisi tidak ditemukan.", divisionsBackURL)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.DeleteDivision(ctx, id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "delete division", err, "Gagal menghapus divisi.", divisionsBackURL)
		return
	}

	http.Redirect(w, r, divisionsBackURL+"?success=deleted", http.StatusSeeOther)
}

func divisionFromForm(r *http.Request) (models.Division, string, string) {
	programsText := r.FormValue("work_programs")
	membersText := r.FormValue("members")
	return models.Division{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Slug:         strings.TrimSpace(r.FormValue("slug")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		WorkPrograms: formLines(r, "work_programs"),
		Members:      parseDivisionMembers(membersText),
	}, programsText, membersText
}

// parseDivisionMembers reads one member per line as "Nama" or
// "Nama, Peran".
func parseDivisionMembers(text string) []models.DivisionMember {
	var out []models.DivisionMember
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, role, _ := strings.Cut(line, ",")
		out = append(out, models.DivisionMember{
			Name: strings.TrimSpace(name),
			Role: strings.TrimSpace(role),
		})
	}
	return out
}

func divisionMembersText(members []models.DivisionMember) string {
	lines := make([]string, 0, len(members))
	for _, m := range members {
		if m.Role != "" {
			lines = append(lines, m.Name+", "+m.Role)
		} else {
			lines = append(lines, m.Name)
		}
	}
	return strings.Join(lines, "\n")
}

func findDivision(st content.State, id primitive.ObjectID) (models.Division, bool) {
	for _, d := range st.Divisions {
		if d.ID == id {
			return d, true
		}
	}
	return models.Division{}, false
}
