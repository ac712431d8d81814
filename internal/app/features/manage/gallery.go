// internal/app/features/manage/gallery.go
package manage

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	gallerystore "github.com/imadiksi/orgsite/internal/app/store/gallery"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const galleryBackURL = "/admin/manage/gallery"

type galleryInput struct {
	Title    string `validate:"max=200" label:"Judul"`
	Category string `validate:"max=100" label:"Kategori"`
}

type galleryListVM struct {
	viewdata.BaseVM
	Items []models.GalleryItem
}

type galleryFormVM struct {
	formutil.Base
	ID     string
	Item   models.GalleryItem
	IsEdit bool
}

// ServeGallery handles GET /admin/manage/gallery.
func (h *Handler) ServeGallery(w http.ResponseWriter, r *http.Request) {
	vm := galleryListVM{
		BaseVM: viewdata.NewBaseVM(r, "Kelola Galeri", "/admin"),
		Items:  h.Content.State().Gallery,
	}
	vm.Success = successFlash(r, "Foto")
	templates.Render(w, r, "manage_gallery_list", vm)
}

// ServeNewGalleryItem handles GET /admin/manage/gallery/new.
func (h *Handler) ServeNewGalleryItem(w http.ResponseWriter, r *http.Request) {
	var vm galleryFormVM
	formutil.SetBase(&vm.Base, r, "Foto Baru", galleryBackURL)
	templates.Render(w, r, "manage_gallery_form", vm)
}

// HandleCreateGalleryItem handles POST /admin/manage/gallery. A new
// item must come with an image; edits may keep the current one.
func (h *Handler) HandleCreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse gallery form failed", err, "Formulir tidak valid.", galleryBackURL)
		return
	}

	item := galleryItemFromForm(r)

	renderWithError := func(msg string) {
		vm := galleryFormVM{Item: item}
		formutil.SetBase(&vm.Base, r, "Foto Baru", galleryBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_gallery_form", vm)
	}

	if result := inputval.Validate(galleryInput{Title: item.Title, Category: item.Category}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	uctx, ucancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer ucancel()

	imageURL, ok := h.galleryImage(uctx, r, renderWithError)
	if !ok {
		return
	}
	if imageURL == "" {
		renderWithError("Foto wajib diunggah.")
		return
	}
	item.ImageURL = imageURL

	ctx, cancel := mutationContext(r)
	defer cancel()

	if _, err := h.Content.AddGalleryItem(ctx, item); err != nil {
		h.ErrLog.LogServerError(w, r, "create gallery item", err, "Gagal menyimpan foto.", galleryBackURL)
		return
	}

	http.Redirect(w, r, galleryBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditGalleryItem handles GET /admin/manage/gallery/{id}/edit.
func (h *Handler) ServeEditGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad gallery id", "Foto tidak ditemukan.", galleryBackURL)
		return
	}

	item, ok := findGalleryItem(h.Content.State(), id)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "gallery item not in cache", "Foto tidak ditemukan.", galleryBackURL)
		return
	}

	vm := galleryFormVM{ID: id.Hex(), Item: item, IsEdit: true}
	formutil.SetBase(&vm.Base, r, "Ubah Foto", galleryBackURL)
	templates.Render(w, r, "manage_gallery_form", vm)
}

// HandleUpdateGalleryItem handles POST /admin/manage/gallery/{id}.
func (h *Handler) HandleUpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad gallery id", "Foto tidak ditemukan.", galleryBackURL)
		return
	}
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse gallery form failed", err, "Formulir tidak valid.", galleryBackURL)
		return
	}

	item := galleryItemFromForm(r)

	renderWithError := func(msg string) {
		vm := galleryFormVM{ID: id.Hex(), Item: item, IsEdit: true}
		formutil.SetBase(&vm.Base, r, "Ubah Foto", galleryBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_gallery_form", vm)
	}

	if result := inputval.Validate(galleryInput{Title: item.Title, Category: item.Category}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	uctx, ucancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer ucancel()

	imageURL, ok := h.galleryImage(uctx, r, renderWithError)
	if !ok {
		return
	}

	in := gallerystore.UpdateInput{
		Title:    &item.Title,
		Category: &item.Category,
	}
	if imageURL != "" {
		in.ImageURL = &imageURL
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.UpdateGalleryItem(ctx, id, in); err != nil {
		h.ErrLog.LogServerError(w, r, "update gallery item", err, "Gagal menyimpan foto.", galleryBackURL)
		return
	}

	http.Redirect(w, r, galleryBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeleteGalleryItem handles POST /admin/manage/gallery/{id}/delete.
func (h *Handler) HandleDeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad gallery id", "Foto tidak ditemukan.", galleryBackURL)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := h.Content.DeleteGalleryItem(ctx, id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "delete gallery item", err, "Gagal menghapus foto.", galleryBackURL)
		return
	}

	http.Redirect(w, r, galleryBackURL+"?success=deleted", http.StatusSeeOther)
}

func galleryItemFromForm(r *http.Request) models.GalleryItem {
	return models.GalleryItem{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Category: strings.TrimSpace(r.FormValue("category")),
	}
}

func (h *Handler) galleryImage(ctx context.Context, r *http.Request, renderWithError func(string)) (string, bool) {
	imageURL, err := h.uploadImage(ctx, r, "image", "gallery")
	if err != nil {
		if isPolicyError(err) {
			renderWithError(err.Error())
			return "", false
		}
		h.Log.Error("gallery image upload failed", zap.Error(err))
		renderWithError("Gagal mengunggah foto.")
		return "", false
	}
	return imageURL, true
}

func findGalleryItem(st content.State, id primitive.ObjectID) (models.GalleryItem, bool) {
	for _, g := range st.Gallery {
		if g.ID == id {
			return g, true
		}
	}
	return models.GalleryItem{}, false
}
