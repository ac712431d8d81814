// Package ranks provides the leadership rank vocabulary for
// organization members and a classifier that maps legacy free-text
// position labels onto it.
//
// Rank is the authoritative field for org-chart placement; the
// free-text position is only a display label. Classify exists so
// records created before the rank field was introduced still land in
// the right chart slot.
package ranks

import (
	"strings"

	"github.com/imadiksi/orgsite/internal/domain/models"
)

// Ordered returns the ranks in display order for the leadership
// section.
func Ordered() []string {
	return []string{
		models.RankKetuaUmum,
		models.RankWakilKetua,
		models.RankSekretaris,
		models.RankBendahara,
		models.RankAnggota,
	}
}

// Label returns the human-readable label for a rank.
func Label(rank string) string {
	switch rank {
	case models.RankKetuaUmum:
		return "Ketua Umum"
	case models.RankWakilKetua:
		return "Wakil Ketua"
	case models.RankSekretaris:
		return "Sekretaris"
	case models.RankBendahara:
		return "Bendahara"
	default:
		return "Anggota"
	}
}

// IsValid reports whether rank is one of the known values.
func IsValid(rank string) bool {
	switch rank {
	case models.RankKetuaUmum, models.RankWakilKetua, models.RankSekretaris,
		models.RankBendahara, models.RankAnggota:
		return true
	}
	return false
}

// Classify maps a free-text position to a rank using the keyword
// substrings the site historically matched on. "wakil" is checked
// before "ketua umum" so "Wakil Ketua Umum" classifies as wakil.
func Classify(position string) string {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "wakil"):
		return models.RankWakilKetua
	case strings.Contains(p, "ketua umum"):
		return models.RankKetuaUmum
	case strings.Contains(p, "sekretaris"):
		return models.RankSekretaris
	case strings.Contains(p, "bendahara"):
		return models.RankBendahara
	default:
		return models.RankAnggota
	}
}
