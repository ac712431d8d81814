// internal/app/store/orgmembers/orgmemberstore.go
package orgmemberstore

import (
	"context"
	"time"

	"github.com/imadiksi/orgsite/internal/app/system/ranks"
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
	return &Store{c: db.Collection("organization_members")}
}

// List returns all organization members ordered by order_index
// ascending. Records saved before the rank field existed get one
// backfilled from their position text.
func (s *Store) List(ctx context.Context) ([]models.OrganizationMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.OrganizationMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].Rank == "" {
			members[i].Rank = ranks.Classify(members[i].Position)
		}
	}
	return members, nil
}

func (s *Store) Create(ctx context.Context, m models.OrganizationMember) (models.OrganizationMember, error) {
	m.ID = primitive.NewObjectID()
	m.CreatedAt = time.Now().UTC()
	if m.Rank == "" {
		m.Rank = ranks.Classify(m.Position)
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.OrganizationMember{}, err
	}
	return m, nil
}

// UpdateInput is a partial-field patch; nil fields are left unchanged.
// DivisionID distinguishes "no change" (nil) from "clear to core
// member" (pointer to nil) via the Set flag.
type UpdateInput struct {
	Name       *string
	Position   *string
	Rank       *string
	PhotoURL   *string
	OrderIndex *int
	IsActive   *bool

	SetDivision bool
	DivisionID  *primitive.ObjectID
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) error {
	set := bson.M{}
	unset := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	// Position is a display label only; a stored rank is never
	// rewritten from it.
	if in.Position != nil {
		set["position"] = *in.Position
	}
	if in.Rank != nil {
		set["rank"] = *in.Rank
	}
	if in.PhotoURL != nil {
		set["photo_url"] = *in.PhotoURL
	}
	if in.OrderIndex != nil {
		set["order_index"] = *in.OrderIndex
	}
	if in.IsActive != nil {
		set["is_active"] = *in.IsActive
	}
	if in.SetDivision {
		if in.DivisionID != nil {
			set["division_id"] = *in.DivisionID
		} else {
			unset["division_id"] = ""
		}
	}
	if len(set) == 0 && len(unset) == 0 {
		return nil
	}
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	_, err := s.c.UpdateByID(ctx, id, update)
	return err
}

// Delete removes a member by ID. Returns the number of documents
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
