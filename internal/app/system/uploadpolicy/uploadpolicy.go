// Package uploadpolicy enforces the upload rules for admin file
// uploads: content-type and size gates checked before any storage
// call, and collision-resistant destination names.
package uploadpolicy

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Size limits. Images are capped tighter than generic documents.
const (
	MaxImageSize    = 5 << 20  // 5 MB
	MaxDocumentSize = 10 << 20 // 10 MB
)

var (
	ErrNotImage    = errors.New("file must be an image")
	ErrImageTooBig = errors.New("image exceeds the 5 MB limit")
	ErrFileTooBig  = errors.New("file exceeds the 10 MB limit")
)

// CheckImage validates an image upload before it touches storage.
func CheckImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > MaxImageSize {
		return ErrImageTooBig
	}
	return nil
}

// CheckDocument validates a generic document upload.
func CheckDocument(size int64) error {
	if size > MaxDocumentSize {
		return ErrFileTooBig
	}
	return nil
}

// ObjectName builds a destination path inside folder that preserves
// the original extension and cannot collide with an existing object:
// <folder>/<unix-ms>-<random>.<ext>. Because names are unique, stores
// are written without overwrite.
func ObjectName(folder, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), suffix, ext)
}
