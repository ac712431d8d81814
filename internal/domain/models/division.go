package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DivisionMember is an informational {name, role} pair embedded in a
// Division. It is display text only and is distinct from the
// OrganizationMember collection used for the org chart.
type DivisionMember struct {
	Name string `bson:"name" json:"name"`
	Role string `bson:"role,omitempty" json:"role,omitempty"`
}

// Division is an organizational division with its work programs and an
// embedded, ordered member list.
type Division struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	WorkPrograms []string           `bson:"work_programs,omitempty" json:"work_programs,omitempty"`
	Members      []DivisionMember   `bson:"members,omitempty" json:"members,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
