// internal/app/store/heroslides/heroslidestore.go
package heroslidestore

import (
	"context"
	"time"

	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("hero_slides")}
}

// slideSort orders by order_index ascending; Mongo keeps insertion
// order for ties, which is the advisory-ordering contract.
var slideSort = bson.D{{Key: "order_index", Value: 1}}

// ListActive returns only slides flagged active, the set served to the
// public carousel.
func (s *Store) ListActive(ctx context.Context) ([]models.HeroSlide, error) {
	return s.find(ctx, bson.M{"is_active": true})
}

// ListAll returns every slide including inactive ones, for the admin
// panel.
func (s *Store) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.HeroSlide, error) {
	opts := options.Find().SetSort(slideSort)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var slides []models.HeroSlide
	if err := cur.All(ctx, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (s *Store) Create(ctx context.Context, slide models.HeroSlide) (models.HeroSlide, error) {
	slide.ID = primitive.NewObjectID()
	slide.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, slide); err != nil {
		return models.HeroSlide{}, err
	}
	return slide, nil
}

// UpdateInput is a partial-field patch; nil fields are left unchanged.
type UpdateInput struct {
	ImageURL   *string
	Title      *string
	Subtitle   *string
	OrderIndex *int
	IsActive   *bool
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) error {
	set := bson.M{}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Subtitle != nil {
		set["subtitle"] = *in.Subtitle
	}
	if in.OrderIndex != nil {
		set["order_index"] = *in.OrderIndex
	}
	if in.IsActive != nil {
		set["is_active"] = *in.IsActive
	}
	if len(set) == 0 {
		return nil
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a slide by ID. Returns the number of documents
// deleted (0 or 1).
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
