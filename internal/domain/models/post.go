package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a news article. Slug is unique and URL-safe; when the admin
// leaves it blank it is derived from the title at create time.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Slug     string             `bson:"slug" json:"slug"`
	Excerpt  string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content  string             `bson:"content,omitempty" json:"content,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`

	// ImageURL is the cover image; FileURL is an optional attachment
	// (e.g. a PDF). Both are public URLs returned by the storage layer.
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	FileURL  string `bson:"file_url,omitempty" json:"file_url,omitempty"`

	Date      string    `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HasAttachment reports whether the post carries a downloadable file.
func (p *Post) HasAttachment() bool {
	return p.FileURL != ""
}
