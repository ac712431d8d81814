// internal/app/features/manage/templates.go
package manage

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "manage",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
