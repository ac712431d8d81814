package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeroSlide is one slide of the home-page carousel. OrderIndex is
// advisory display ordering (ties keep insertion order); only active
// slides are served to the public site, while the admin panel manages
// all of them.
type HeroSlide struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ImageURL string             `bson:"image_url" json:"image_url"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`

	OrderIndex int  `bson:"order_index" json:"order_index"`
	IsActive   bool `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
