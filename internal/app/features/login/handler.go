// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/imadiksi/orgsite/internal/app/features/errors"
	userstore "github.com/imadiksi/orgsite/internal/app/store/users"
	"github.com/imadiksi/orgsite/internal/app/system/auth"
	"github.com/imadiksi/orgsite/internal/app/system/timeouts"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

// ServeLogin handles GET /admin/login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Masuk Admin", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

// HandleLoginPost handles POST /admin/login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Data formulir tidak valid.", "/admin/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Email dan kata sandi wajib diisi.", email, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		h.Log.Info("login failed, unknown email", zap.String("email", email))
		h.renderFormWithError(w, r, "Email atau kata sandi salah.", email, ret)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "DB lookup user by email", err, "Terjadi kesalahan pada server.", "/admin/login")
		return
	}

	if !h.Users.VerifyPassword(u, password) {
		h.Log.Info("login failed, bad password", zap.String("email", email))
		h.renderFormWithError(w, r, "Email atau kata sandi salah.", email, ret)
		return
	}

	su := &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "sign in session write", err, "Terjadi kesalahan pada server.", "/admin/login")
		return
	}

	h.Log.Info("admin signed in",
		zap.String("user_id", su.ID),
		zap.String("email", su.Email))

	http.Redirect(w, r, safeReturnURL(ret), http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, ret string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Masuk Admin", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}

// safeReturnURL only honors same-site relative paths so the login form
// cannot be used as an open redirect.
func safeReturnURL(ret string) string {
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return "/admin"
	}
	return ret
}
