// internal/app/features/about/templates.go
package about

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "about",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
