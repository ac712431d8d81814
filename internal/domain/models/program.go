package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program statuses.
const (
	ProgramOngoing   = "ongoing"
	ProgramUpcoming  = "upcoming"
	ProgramCompleted = "completed"
)

// Program is a work program shown on the public Programs page:
// a title, a short summary, a lifecycle status, and free-form tags.
type Program struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Summary string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Status  string             `bson:"status,omitempty" json:"status,omitempty"` // ongoing, upcoming, completed
	Date    string             `bson:"date,omitempty" json:"date,omitempty"`
	Tags    []string           `bson:"tags,omitempty" json:"tags,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
