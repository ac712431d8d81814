package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is a single photo in the public gallery. Category is
// free text used for filtering the grid.
type GalleryItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL string             `bson:"image_url" json:"image_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
