// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/imadiksi/orgsite/internal/app/system/slugutil"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicateSlug = errors.New("a post with this slug already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// List returns all posts, newest first (creation time descending).
func (s *Store) List(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Post, error) {
	var p models.Post
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Create inserts a post, deriving the slug from the title when it is
// blank. The unique index on slug turns collisions into
// ErrDuplicateSlug.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	if p.Slug == "" {
		p.Slug = slugutil.Make(p.Title)
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Post{}, ErrDuplicateSlug
		}
		return models.Post{}, err
	}
	return p, nil
}

// UpdateInput is a partial-field patch; nil fields are left unchanged.
type UpdateInput struct {
	Title    *string
	Slug     *string
	Excerpt  *string
	Content  *string
	Category *string
	ImageURL *string
	FileURL  *string
	Date     *string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) error {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Slug != nil {
		slug := *in.Slug
		if slug == "" && in.Title != nil {
			slug = slugutil.Make(*in.Title)
		}
		set["slug"] = slug
	}
	if in.Excerpt != nil {
		set["excerpt"] = *in.Excerpt
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if in.FileURL != nil {
		set["file_url"] = *in.FileURL
	}
	if in.Date != nil {
		set["date"] = *in.Date
	}
	if len(set) == 0 {
		return nil
	}
	if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// Delete removes a post by ID. Returns the number of documents deleted
// (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
