// internal/app/features/manage/handler.go

// Package manage is the admin panel's content management area: list,
// create, edit, and delete forms for each public collection. All
// writes go through the content service so the cache is refetched
// after every successful mutation.
package manage

import (
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/imadiksi/orgsite/internal/app/content"
	uierrors "github.com/imadiksi/orgsite/internal/app/features/errors"
	"go.uber.org/zap"
)

type Handler struct {
	Content *content.Service
	Storage storage.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger

	// FileBaseURL is the public URL prefix for uploaded objects
	// (e.g. "/files" for local storage or a CDN origin for S3).
	FileBaseURL string
}

func NewHandler(svc *content.Service, store storage.Store, fileBaseURL string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Content:     svc,
		Storage:     store,
		ErrLog:      errLog,
		Log:         logger,
		FileBaseURL: fileBaseURL,
	}
}
