// internal/app/system/limits/limits.go
package limits

// Request body size limits for form handling.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize is the maximum size for plain (non-file) form submissions.
	MaxFormSize = 1 << 20 // 1 MB

	// MaxMultipartMemory is how much of a multipart upload is held in
	// memory before spilling to disk. File size limits themselves are
	// enforced by the upload policy, not here.
	MaxMultipartMemory = 16 << 20 // 16 MB
)
