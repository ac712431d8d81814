// internal/app/features/manage/events.go
package manage

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	eventstore "github.com/imadiksi/orgsite/internal/app/store/events"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const eventsBackURL = "/admin/manage/events"

type eventInput struct {
	Title    string `validate:"required,max=200" label:"Nama agenda"`
	Date     string `validate:"required,isodate" label:"Tanggal"`
	Location string `validate:"max=200" label:"Lokasi"`
}

type eventListVM struct {
	viewdata.BaseVM
	Events []models.Event
}

type eventFormVM struct {
	formutil.Base
	ID     string
	Event  models.Event
	IsEdit bool
}

// ServeEvents handles GET /admin/manage/events.
func (h *Handler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	vm := eventListVM{
		BaseVM: viewdata.NewBaseVM(r, "Kelola Agenda", "/admin"),
		Events: h.Content.State().Events,
	}
	vm.Success = successFlash(r, "Agenda")
	templates.Render(w, r, "manage_event_list", vm)
}

// ServeNewEvent handles GET /admin/manage/events/new.
func (h *Handler) ServeNewEvent(w http.ResponseWriter, r *http.Request) {
	var vm eventFormVM
	formutil.SetBase(&vm.Base, r, "Agenda Baru", eventsBackURL)
	templates.Render(w, r, "manage_event_form", vm)
}

// HandleCreateEvent handles POST /admin/manage/events.
func (h *Handler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse event form failed", err, "Formulir tidak valid.", eventsBackURL)
		return
	}

	e := eventFromForm(r)

	renderWithError := func(msg string) {
		vm := eventFormVM{Event: e}
		formutil.SetBase(&vm.Base, r, "Agenda Baru", eventsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_event_form", vm)
	}

	in := eventInput{Title: e.Title, Date: e.Date, Location: e.Location}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if _, err := h.Content.AddEvent(ctx, e); err != nil {
		h.ErrLog.LogServerError(w, r, "create event", err, "Gagal menyimpan agenda.", eventsBackURL)
		return
	}

	http.Redirect(w, r, eventsBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditEvent handles GET /admin/manage/events/{id}/edit.
func (h *Handler) ServeEditEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad event id", "Agenda tidak ditemukan.", eventsBackURL)
		return
	}

	e, ok := findEvent(h.Content.State(), id)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "event not in cache", "Agenda tidak ditemukan.", eventsBackURL)
		return
	}

	vm := eventFormVM{ID: id.Hex(), Event: e, IsEdit: true}
	formutil.SetBase(&vm.Base, r, "Ubah Agenda", eventsBackURL)
	templates.Render(w, r, "manage_event_form", vm)
}

// HandleUpdateEvent handles POST /admin/manage/events/{id}.
func (h *Handler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad event id", "Agenda tidak ditemukan.", eventsBackURL)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse event form failed", err, "Formulir tidak valid.", eventsBackURL)
		return
	}

	e := eventFromForm(r)

	renderWithError := func(msg string) {
		vm := eventFormVM{ID: id.Hex(), Event: e, IsEdit: true}
		formutil.SetBase(&vm.Base, r, "Ubah Agenda", eventsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_event_form", vm)
	}

	in := eventInput{Title: e.Title, Date: e.Date, Location: e.Location}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	err = h.Content.UpdateEvent(ctx, id, eventstore.UpdateInput{
		Title:    &e.Title,
		Date:     &e.Date,
		Location: &e.Location,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update event", err, "Gagal menyimpan agenda.", eventsBackURL)
		return
	}

	http.Redirect(w, r, eventsBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeleteEvent handles POST /admin/manage/events/{id}/delete.
func (h *Handler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad event id", "Agenda tidak ditemukan.", eventsBackURL)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.DeleteEvent(ctx, id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "delete event", err, "Gagal menghapus agenda.", eventsBackURL)
		return
	}

	http.Redirect(w, r, eventsBackURL+"?success=deleted", http.StatusSeeOther)
}

func eventFromForm(r *http.Request) models.Event {
	return models.Event{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Date:     strings.TrimSpace(r.FormValue("date")),
		Location: strings.TrimSpace(r.FormValue("location")),
	}
}

func findEvent(st content.State, id primitive.ObjectID) (models.Event, bool) {
	for _, e := range st.Events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}
