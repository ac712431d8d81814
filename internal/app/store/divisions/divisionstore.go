// internal/app/store/divisions/divisionstore.go
package divisionstore

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

var ErrDuplicateSlug = errors.New("a division with this slug already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("divisions")}
}

// List returns all divisions, newest first (creation time descending).
func (s *Store) List(ctx context.Context) ([]models.Division, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var divisions []models.Division
	if err := cur.All(ctx, &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Division, error) {
	var d models.Division
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return models.Division{}, err
	}
	return d, nil
}

func (s *Store) Create(ctx context.Context, d models.Division) (models.Division, error) {
	d.ID = primitive.NewObjectID()
	d.CreatedAt = time.Now().UTC()
	if d.Slug == "" {
		d.Slug = slugutil.Make(d.Name)
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Division{}, ErrDuplicateSlug
		}
		return models.Division{}, err
	}
	return d, nil
}

// UpdateInput is a partial-field patch; nil fields are left unchanged.
type UpdateInput struct {
	Name         *string
	Slug         *string
	Description  *string
	WorkPrograms *[]string
	Members      *[]models.DivisionMember
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) error {
	set := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Slug != nil {
		slug := *in.Slug
		if slug == "" && in.Name != nil {
			slug = slugutil.Make(*in.Name)
		}
		set["slug"] = slug
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.WorkPrograms != nil {
		set["work_programs"] = *in.WorkPrograms
	}
	if in.Members != nil {
		set["members"] = *in.Members
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

// Delete removes a division by ID. Returns the number of documents
// deleted (0 or 1). Organization members referencing the division are
// left untouched; referential integrity is the database's concern.
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
