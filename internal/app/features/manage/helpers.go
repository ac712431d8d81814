// internal/app/features/manage/helpers.go
package manage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/imadiksi/orgsite/internal/app/system/limits"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/uploadpolicy"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// mutationContext is the context for gateway-write-then-refetch
// operations. It is detached from the request so a client disconnect
// mid-write cannot leave the cache out of sync with the store.
func mutationContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), timeouts.Long())
}

// successFlash maps the ?success= redirect param to display text for
// the named entity.
func successFlash(r *http.Request, noun string) string {
	switch r.URL.Query().Get("success") {
	case "created":
		return noun + " berhasil ditambahkan."
	case "updated":
		return noun + " berhasil diperbarui."
	case "deleted":
		return noun + " berhasil dihapus."
	}
	return ""
}

// idParam parses the {id} route parameter as an ObjectID.
func idParam(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// parseMultipart bounds the in-memory portion of a multipart form.
// Forms without file inputs go through ParseForm instead.
func parseMultipart(r *http.Request) error {
	return r.ParseMultipartForm(limits.MaxMultipartMemory)
}

// formInt parses a numeric form value, defaulting to 0 when blank.
func formInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// formLines splits a textarea into trimmed non-empty lines. Used for
// list-like fields (work programs, tags entered one per line).
func formLines(r *http.Request, name string) []string {
	var out []string
	for _, line := range strings.Split(r.FormValue(name), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// uploadImage validates and stores an image from the named file input.
// Returns ("", nil) when the input was left empty so callers can keep
// the existing image on edit.
func (h *Handler) uploadImage(ctx context.Context, r *http.Request, field, folder string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", field, err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := uploadpolicy.CheckImage(contentType, header.Size); err != nil {
		return "", err
	}
	return h.storeUpload(ctx, file, header, folder, contentType)
}

// uploadDocument stores an arbitrary attachment (e.g. a PDF linked
// from a news post). Returns ("", nil) when the input was left empty.
func (h *Handler) uploadDocument(ctx context.Context, r *http.Request, field, folder string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", field, err)
	}
	defer file.Close()

	if err := uploadpolicy.CheckDocument(header.Size); err != nil {
		return "", err
	}
	return h.storeUpload(ctx, file, header, folder, header.Header.Get("Content-Type"))
}

func (h *Handler) storeUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder, contentType string) (string, error) {
	path := uploadpolicy.ObjectName(folder, header.Filename)
	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.Storage.Put(ctx, path, file, opts); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	h.Log.Info("file uploaded",
		zap.String("path", path),
		zap.Int64("size", header.Size))

	return strings.TrimRight(h.FileBaseURL, "/") + "/" + path, nil
}

// isPolicyError reports whether err is an upload-policy rejection the
// admin can fix, as opposed to a storage failure.
func isPolicyError(err error) bool {
	return errors.Is(err, uploadpolicy.ErrNotImage) ||
		errors.Is(err, uploadpolicy.ErrImageTooBig) ||
		errors.Is(err, uploadpolicy.ErrFileTooBig)
}
