// internal/app/features/manage/programs.go
package manage

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	programstore "github.com/imadiksi/orgsite/internal/app/store/programs"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const programsBackURL = "/admin/manage/programs"

type programInput struct {
	Title   string `validate:"required,max=200" label:"Nama program"`
	Summary string `validate:"max=1000" label:"Ringkasan"`
	Status  string `validate:"required,programstatus" label:"Status"`
	Date    string `validate:"omitempty,isodate" label:"Tanggal"`
}

type programListVM struct {
	viewdata.BaseVM
	Programs []models.Program
}

type programFormVM struct {
	formutil.Base
	ID      string
	Program models.Program
	IsEdit  bool
	// TagsText is the textarea form of Program.Tags, one per line.
	TagsText string
}

// ServePrograms handles GET /admin/manage/programs.
func (h *Handler) ServePrograms(w http.ResponseWriter, r *http.Request) {
	vm := programListVM{
		BaseVM:   viewdata.NewBaseVM(r, "Kelola Program Kerja", "/admin"),
		Programs: h.Content.State().Programs,
	}
	vm.Success = successFlash(r, "Program")
	templates.Render(w, r, "manage_program_list", vm)
}

// ServeNewProgram handles GET /admin/manage/programs/new.
func (h *Handler) ServeNewProgram(w http.ResponseWriter, r *http.Request) {
	vm := programFormVM{Program: models.Program{Status: models.ProgramOngoing}}
	formutil.SetBase(&vm.Base, r, "Program Baru", programsBackURL)
	templates.Render(w, r, "manage_program_form", vm)
}

// HandleCreateProgram handles POST /admin/manage/programs.
func (h *Handler) HandleCreateProgram(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse program form failed", err, "Formulir tidak valid.", programsBackURL)
		return
	}

	p, tagsText := programFromForm(r)

	renderWithError := func(msg string) {
		vm := programFormVM{Program: p, TagsText: tagsText}
		formutil.SetBase(&vm.Base, r, "Program Baru", programsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_program_form", vm)
	}

	in := programInput{Title: p.Title, Summary: p.Summary, Status: p.Status, Date: p.Date}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if _, err := h.Content.AddProgram(ctx, p); err != nil {
		h.ErrLog.LogServerError(w, r, "create program", err, "Gagal menyimpan program.", programsBackURL)
		return
	}

	http.Redirect(w, r, programsBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditProgram handles GET /admin/manage/programs/{id}/edit.
func (h *Handler) ServeEditProgram(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad program id", "Program tidak ditemukan.", programsBackURL)
		return
	}

	p, ok := findProgram(h.Content.State(), id)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "program not in cache", "Program tidak ditemukan.", programsBackURL)
		return
	}

	vm := programFormVM{
		ID:       id.Hex(),
		Program:  p,
		IsEdit:   true,
		TagsText: strings.Join(p.Tags, "\n"),
	}
	formutil.SetBase(&vm.Base, r, "Ubah Program", programsBackURL)
	templates.Render(w, r, "manage_program_form", vm)
}

// HandleUpdateProgram handles POST /admin/manage/programs/{id}.
func (h *Handler) HandleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad program id", "Program tidak ditemukan.", programsBackURL)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse program form failed", err, "Formulir tidak valid.", programsBackURL)
		return
	}

	p, tagsText := programFromForm(r)

	renderWithError := func(msg string) {
		vm := programFormVM{ID: id.Hex(), Program: p, IsEdit: true, TagsText: tagsText}
		formutil.SetBase(&vm.Base, r, "Ubah Program", programsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_program_form", vm)
	}

	in := programInput{Title: p.Title, Summary: p.Summary, Status: p.Status, Date: p.Date}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	err = h.Content.UpdateProgram(ctx, id, programstore.UpdateInput{
		Title:   &p.Title,
		Summary: &p.Summary,
		Status:  &p.Status,
		Date:    &p.Date,
		Tags:    &p.Tags,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update program", err, "Gagal menyimpan program.", programsBackURL)
		return
	}

	http.Redirect(w, r, programsBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeleteProgram handles POST /admin/manage/programs/{id}/delete.
func (h *Handler) HandleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad program id", "Program tidak ditemukan.", programsBackURL)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.DeleteProgram(ctx, id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "delete program", err, "Gagal menghapus program.", programsBackURL)
		return
	}

	http.Redirect(w, r, programsBackURL+"?success=deleted", http.StatusSeeOther)
}

func programFromForm(r *http.Request) (models.Program, string) {
	tagsText := r.FormValue("tags")
	return models.Program{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Summary: strings.TrimSpace(r.FormValue("summary")),
		Status:  strings.ToLower(strings.TrimSpace(r.FormValue("status"))),
		Date:    strings.TrimSpace(r.FormValue("date")),
		Tags:    formLines(r, "tags"),
	}, tagsText
}

func findProgram(st content.State, id primitive.ObjectID) (models.Program, bool) {
	for _, p := range st.Programs {
		if p.ID == id {
			return p, true
		}
	}
	return models.Program{}, false
}
