// internal/app/features/manage/posts.go
package manage

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/imadiksi/orgsite/internal/app/content"
	poststore "github.com/imadiksi/orgsite/internal/app/store/posts"
	"github.com/imadiksi/orgsite/internal/app/system/formutil"
	"github.com/imadiksi/orgsite/internal/app/system/htmlsanitize"
	"github.com/imadiksi/orgsite/internal/app/system/inputval"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const postsBackURL = "/admin/manage/posts"

type postInput struct {
	Title    string `validate:"required,max=200" label:"Judul"`
	Excerpt  string `validate:"max=500" label:"Ringkasan"`
	Category string `validate:"max=100" label:"Kategori"`
	Date     string `validate:"omitempty,isodate" label:"Tanggal"`
}

type postListVM struct {
	viewdata.BaseVM
	Posts []models.Post
}

type postFormVM struct {
	formutil.Base
	ID     string
	Post   models.Post
	IsEdit bool
}

// ServePosts handles GET /admin/manage/posts.
func (h *Handler) ServePosts(w http.ResponseWriter, r *http.Request) {
	st := h.Content.State()
	vm := postListVM{
		BaseVM: viewdata.NewBaseVM(r, "Kelola Berita", "/admin"),
		Posts:  st.Posts,
	}
	vm.Success = successFlash(r, "Berita")
	templates.Render(w, r, "manage_post_list", vm)
}

// ServeNewPost handles GET /admin/manage/posts/new.
func (h *Handler) ServeNewPost(w http.ResponseWriter, r *http.Request) {
	var vm postFormVM
	formutil.SetBase(&vm.Base, r, "Berita Baru", postsBackURL)
	templates.Render(w, r, "manage_post_form", vm)
}

// HandleCreatePost handles POST /admin/manage/posts.
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse post form failed", err, "Formulir tidak valid.", postsBackURL)
		return
	}

	p := postFromForm(r)

	renderWithError := func(msg string) {
		vm := postFormVM{Post: p}
		formutil.SetBase(&vm.Base, r, "Berita Baru", postsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_post_form", vm)
	}

	in := postInput{Title: p.Title, Excerpt: p.Excerpt, Category: p.Category, Date: p.Date}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer cancel()

	if !h.attachPostUploads(ctx, r, &p, renderWithError) {
		return
	}

	mctx, mcancel := mutationContext(r)
	defer mcancel()

	if _, err := h.Content.AddPost(mctx, p); err != nil {
		if errors.Is(err, poststore.ErrDuplicateSlug) {
			renderWithError("Berita dengan slug tersebut sudah ada.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create post", err, "Gagal menyimpan berita.", postsBackURL)
		return
	}

	http.Redirect(w, r, postsBackURL+"?success=created", http.StatusSeeOther)
}

// ServeEditPost handles GET /admin/manage/posts/{id}/edit.
func (h *Handler) ServeEditPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad post id", "Berita tidak ditemukan.", postsBackURL)
		return
	}

	p, ok := findPost(h.Content.State(), id)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "post not in cache", "Berita tidak ditemukan.", postsBackURL)
		return
	}

	vm := postFormVM{ID: id.Hex(), Post: p, IsEdit: true}
	formutil.SetBase(&vm.Base, r, "Ubah Berita", postsBackURL)
	templates.Render(w, r, "manage_post_form", vm)
}

// HandleUpdatePost handles POST /admin/manage/posts/{id}.
func (h *Handler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad post id", "Berita tidak ditemukan.", postsBackURL)
		return
	}
	if err := parseMultipart(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse post form failed", err, "Formulir tidak valid.", postsBackURL)
		return
	}

	p := postFromForm(r)

	renderWithError := func(msg string) {
		vm := postFormVM{ID: id.Hex(), Post: p, IsEdit: true}
		formutil.SetBase(&vm.Base, r, "Ubah Berita", postsBackURL)
		vm.SetError(msg)
		templates.Render(w, r, "manage_post_form", vm)
	}

	in := postInput{Title: p.Title, Excerpt: p.Excerpt, Category: p.Category, Date: p.Date}
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upload())
	defer cancel()

	if !h.attachPostUploads(ctx, r, &p, renderWithError) {
		return
	}

	in2 := poststore.UpdateInput{
		Title:    &p.Title,
		Slug:     &p.Slug,
		Excerpt:  &p.Excerpt,
		Content:  &p.Content,
		Category: &p.Category,
		Date:     &p.Date,
	}
	if p.ImageURL != "" {
		in2.ImageURL = &p.ImageURL
	}
	if p.FileURL != "" {
		in2.FileURL = &p.FileURL
	}

	mctx, mcancel := mutationContext(r)
	defer mcancel()

	if err := h.Content.UpdatePost(mctx, id, in2); err != nil {
		if errors.Is(err, poststore.ErrDuplicateSlug) {
			renderWithError("Berita dengan slug tersebut sudah ada.")
			return
		}
		h.ErrLog.LogServerError(w, r, "update post", err, "Gagal menyimpan berita.", postsBackURL)
		return
	}

	http.Redirect(w, r, postsBackURL+"?success=updated", http.StatusSeeOther)
}

// HandleDeletePost handles POST /admin/manage/posts/{id}/delete.
func (h *Handler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad post id", "Berita tidak ditemukan.", postsBackURL)
		return
	}

	mctx, mcancel := mutationContext(r)
	defer mcancel()

	if err := h.Content.DeletePost(mctx, id); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			// Already gone; the list will reflect that.
			http.Redirect(w, r, postsBackURL, http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "delete post", err, "Gagal menghapus berita.", postsBackURL)
		return
	}

	http.Redirect(w, r, postsBackURL+"?success=deleted", http.StatusSeeOther)
}

// postFromForm reads the text fields shared by create and update. The
// body is sanitized here so stored HTML is already safe to serve.
func postFromForm(r *http.Request) models.Post {
	return models.Post{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Slug:     strings.TrimSpace(r.FormValue("slug")),
		Excerpt:  strings.TrimSpace(r.FormValue("excerpt")),
		Content:  htmlsanitize.Sanitize(r.FormValue("content")),
		Category: strings.TrimSpace(r.FormValue("category")),
		Date:     strings.TrimSpace(r.FormValue("date")),
	}
}

// attachPostUploads stores the optional cover image and attachment.
// Returns false after rendering an error response.
func (h *Handler) attachPostUploads(ctx context.Context, r *http.Request, p *models.Post, renderWithError func(string)) bool {
	imageURL, err := h.uploadImage(ctx, r, "image", "posts")
	if err != nil {
		if isPolicyError(err) {
			renderWithError(err.Error())
			return false
		}
		h.Log.Error("post image upload failed", zap.Error(err))
		renderWithError("Gagal mengunggah gambar.")
		return false
	}
	if imageURL != "" {
		p.ImageURL = imageURL
	}

	fileURL, err := h.uploadDocument(ctx, r, "file", "posts")
	if err != nil {
		if isPolicyError(err) {
			renderWithError(err.Error())
			return false
		}
		h.Log.Error("post attachment upload failed", zap.Error(err))
		renderWithError("Gagal mengunggah lampiran.")
		return false
	}
	if fileURL != "" {
		p.FileURL = fileURL
	}
	return true
}

func findPost(st content.State, id primitive.ObjectID) (models.Post, bool) {
	for _, p := range st.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}
