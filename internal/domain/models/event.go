package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is an upcoming agenda item shown on the home page.
// Date is a display string (e.g. "2026-10-01"); events list by date
// ascending.
type Event struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Date     string             `bson:"date" json:"date"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
