// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// Example usage:
//
//	type postFormData struct {
//		formutil.Base
//		Title string
//		Body  string
//	}
//
//	// In your handler:
//	data := postFormData{Title: title, Body: body}
//	formutil.SetBase(&data.Base, r, "Edit Post", "/admin/manage/posts")
//	data.SetError("Title is required.")
//	templates.Render(w, r, "post_form", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/imadiksi/orgsite/internal/app/system/auth"
	"github.com/imadiksi/orgsite/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	SiteName    string
	Title       string
	IsLoggedIn  bool
	Role        string
	UserName    string
	BackURL     string
	CurrentPath string
	CSRFToken   string
	Success     string
	Error       template.HTML
}

// SetBase populates the common Base fields from the request context.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.SiteName = viewdata.SiteName
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
	if u, ok := auth.CurrentUser(r); ok {
		b.IsLoggedIn = true
		b.Role = u.Role
		b.UserName = u.Name
	}
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
