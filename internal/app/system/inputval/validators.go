// internal/app/system/inputval/validators.go
package inputval

import (
	"net/url"
	"strings"
	"time"

	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidObjectID reports whether s is a 24-char hex Mongo ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}

// IsValidProgramStatus reports whether s is a known program lifecycle
// status.
func IsValidProgramStatus(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.ProgramOngoing, models.ProgramUpcoming, models.ProgramCompleted:
		return true
	}
	return false
}

// IsValidISODate reports whether s parses as YYYY-MM-DD.
func IsValidISODate(s string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	return err == nil
}
