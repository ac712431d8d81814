// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"strings"
	"time"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging, CORS). AppConfig is everything specific to this site: the
// MongoDB connection, session cookies, file storage, and the bootstrap
// admin account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Session lifetime

	// File storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads/files")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// S3/CloudFront configuration (only used if StorageType is "s3")
	StorageS3Region string // AWS region
	StorageS3Bucket string // S3 bucket name
	StorageS3Prefix string // Key prefix (e.g., "uploads/")
	StorageCFURL    string // CloudFront distribution URL for serving uploaded files

	// Admin bootstrap: created or promoted on startup when set.
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// FileBaseURL returns the public URL prefix under which uploaded files
// are reachable. Stored content URLs are built by joining this prefix
// with the object path.
func (c AppConfig) FileBaseURL() string {
	if c.StorageType == "s3" {
		return strings.TrimRight(c.StorageCFURL, "/")
	}
	return strings.TrimRight(c.StorageLocalURL, "/")
}
