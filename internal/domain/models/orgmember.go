package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Leadership ranks for OrganizationMember. Rank drives placement on
// the About/Organization pages; Position stays free text and is only a
// display label.
const (
	RankKetuaUmum  = "ketua_umum"
	RankWakilKetua = "wakil_ketua"
	RankSekretaris = "sekretaris"
	RankBendahara  = "bendahara"
	RankAnggota    = "anggota"
)

// OrganizationMember is a person on the organization chart.
// DivisionID nil means a core/executive member rendered in the
// top-level leadership section; otherwise the member is grouped under
// the referenced division. The store does not enforce that DivisionID
// points at an existing division.
type OrganizationMember struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name       string              `bson:"name" json:"name"`
	Position   string              `bson:"position" json:"position"`
	Rank       string              `bson:"rank,omitempty" json:"rank,omitempty"`
	DivisionID *primitive.ObjectID `bson:"division_id,omitempty" json:"division_id,omitempty"`

	PhotoURL   string `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	OrderIndex int    `bson:"order_index" json:"order_index"`
	IsActive   bool   `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsCore reports whether the member belongs to the core leadership
// section (no division reference).
func (m *OrganizationMember) IsCore() bool {
	return m.DivisionID == nil
}
