// Package slugutil derives URL-safe slugs from titles: lowercase
// ASCII letters and digits, with every other run of characters
// collapsed to a single dash.
package slugutil

import "strings"

// Make returns the slug for a title. Empty input yields an empty slug;
// callers that need uniqueness rely on the collection's unique index.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
