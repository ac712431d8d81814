// internal/app/features/manage/heroslides.go
package manage

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	heroslidestore "github.com/imadiksi/orgsite/internal/app/store/heroslides"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const slidesBackURL = "/admin/manage/hero-slides"

type slideInput struct {
	Title    string `validate:"max=200" label:"Judul"`
	Subtitle string `validate:"max=300" label:"Subjudul"`
}

type slideListVM struct {
	viewdata.BaseVM
	Slides []models.HeroSlide
}

type slideFormVM struct {
	formutil.Base
	ID     string
	Slide  models.HeroSlide
	IsEdit bool
}

// ServeHeroSlides handles GET /admin/manage/hero-slides. Unlike the
// other lists this one reads through to the store so inactive slides
// show up for management.
func (h *Handler) ServeHeroSlides(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	slides, err := h.Content.AllHeroSlides(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list all hero slides", err, "Gagal memuat slide.", "/admin")
		return
	}

	vm := slideListVM{
		BaseVM: viewdata.NewBaseVM(r, "Kelola Slide Beranda", "/admin"),
		Slides: slides,
	}
	vm.Success = successFlash(r, "Slide")
	templates.Render(w, r, "manage_slide_list", vm)
}

// ServeNewHeroSlide handles GET /admin/manage/hero-slides/new.
func (h *Handler) ServeNewHeroSlide(w http.ResponseWriter, r *http.Request) {
	vm := slideFormVM{Slide: models.HeroSlide{IsActive: true}}
	formutil.SetBase(&vm.Base, r, "Slide Baru", slidesBackURL)
	templates.Render(w, r, "manage_slide_form", vm)
}

// HandleCreateHeroSlide handles POST /admin/manage/hero-slides.
func (h *Handler) HandleCreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse slide form failed", err, "Formulir tidak valid.", slidesBackURL)
		return
	}

	slide, err := slideFromForm(r)

	renderWithError := func(msg string) {
		vm := slideFormVM{Slide: slide}
		formutil.SetBase(&vm.Base, r, "Slide Baru", slidesBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_slide_form", vm)
	}

	if err != nil {
		renderWithError("Urutan harus berupa angka.")
		return
	}
	if result := inputval.Validate(slideInput{Title: slide.Title, Subtitle: slide.Subtitle}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	uctx, ucancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer ucancel()

	imageURL, ok := h.slideImage(uctx, r, renderWithError)
	if !ok {
		return
	}
	if imageURL == "" {
		renderWithError("Gambar slide wajib diunggah.")
		return
	}
	slide.ImageURL = imageURL

	ctx, cancel := mutationContext(r)
	defer cancel()

	if _, err := h.Content.AddHeroSlide(ctx, slide); err != nil {
		h.ErrLog.LogServerError(w, r, "create hero slide", err, "Gagal menyimpan slide.", slidesBackURL)
		return
	}

	http.Redirect(w, r, slidesBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditHeroSlide handles GET /admin/manage/hero-slides/{id}/edit.
func (h *Handler) ServeEditHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad slide id", "Slide tidak ditemukan.", slidesBackURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	slide, ok, err := h.findSlide(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list all hero slides", err, "Gagal memuat slide.", slidesBackURL)
		return
	}
	if !ok {
		h.ErrLog.LogNotFound(w, r, "slide not found", "Slide tidak ditemukan.", slidesBackURL)
		return
	}

	vm := slideFormVM{ID: id.Hex(), Slide: slide, IsEdit: true}
	formutil.SetBase(&vm.Base, r, "Ubah Slide", slidesBackURL)
	templates.Render(w, r, "manage_slide_form", vm)
}

// HandleUpdateHeroSlide handles POST /admin/manage/hero-slides/{id}.
// Deactivating a slide is just IsActive=false here; it drops out of
// the public carousel on the refetch that follows.
func (h *Handler) HandleUpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad slide id", "Slide tidak ditemukan.", slidesBackURL)
		return
	}
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse slide form failed", err, "Formulir tidak valid.", slidesBackURL)
		return
	}

	slide, err := slideFromForm(r)

	renderWithError := func(msg string) {
		vm := slideFormVM{ID: id.Hex(), Slide: slide, IsEdit: true}
		formutil.SetBase(&vm.Base, r, "Ubah Slide", slidesBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_slide_form", vm)
	}

	if err != nil {
		renderWithError("Urutan harus berupa angka.")
		return
	}
	if result := inputval.Validate(slideInput{Title: slide.Title, Subtitle: slide.Subtitle}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	uctx, ucancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer ucancel()

	imageURL, ok := h.slideImage(uctx, r, renderWithError)
	if !ok {
		return
	}

	in := heroslidestore.UpdateInput{
		Title:      &slide.Title,
		Subtitle:   &slide.Subtitle,
		OrderIndex: &slide.OrderIndex,
		IsActive:   &slide.IsActive,
	}
	if imageURL != "" {
		in.ImageURL = &imageURL
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.UpdateHeroSlide(ctx, id, in); err != nil {
		h.ErrLog.LogServerError(w, r, "update hero slide", err, "Gagal menyimpan slide.", slidesBackURL)
		return
	}

	http.Redirect(w, r, slidesBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeleteHeroSlide handles POST /admin/manage/hero-slides/{id}/delete.
func (h *Handler) HandleDeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad slide id", "Slide tidak ditemukan.", slidesBackURL)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.DeleteHeroSlide(ctx, id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "delete hero slide", err, "Gagal menghapus slide.", slidesBackURL)
		return
	}

	http.Redirect(w, r, slidesBackURL+"?success=deleted", http.StatusSeeOther)
}

func slideFromForm(r *http.Request) (models.HeroSlide, error) {
	order, err := formInt(r, "order_index")
	return models.HeroSlide{
		Title:      strings.TrimSpace(r.FormValue("title")),
		Subtitle:   strings.TrimSpace(r.FormValue("subtitle")),
		OrderIndex: order,
		IsActive:   r.FormValue("is_active") == "on",
	}, err
}

func (h *Handler) slideImage(ctx context.Context, r *http.Request, renderWithError func(string)) (string, bool) {
	imageURL, err := h.uploadImage(ctx, r, "image", "slides")
	if err != nil {
		if isPolicyError(err) {
			renderWithError(err.Error())
			return "", false
		}
		h.Log.Error("slide image upload failed", zap.Error(err))
		renderWithError("Gagal mengunggah gambar.")
		return "", false
	}
	return imageURL, true
}

func (h *Handler) findSlide(ctx context.Context, id primitive.ObjectID) (models.HeroSlide, bool, error) {
	slides, err := h.Content.AllHeroSlides(ctx)
	if err != nil {
		return models.HeroSlide{}, false, err
	}
	for _, s := range slides {
		if s.ID == id {
			return s, true, nil
		}
	}
	return models.HeroSlide{}, false, nil
}
