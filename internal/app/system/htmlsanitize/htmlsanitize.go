// Package htmlsanitize strips dangerous markup from user-supplied HTML.
// Post and division bodies are written by admins through a rich-text
// editor, but we still sanitize on the way in so a compromised admin
// account cannot plant scripts on the public site.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows common formatting tags and safe links (UGC policy).
var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe tags and attributes removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// SanitizeHTML sanitizes and marks the result as safe for template
// interpolation.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}
