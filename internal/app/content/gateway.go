// internal/app/content/gateway.go
package content

import (
	"context"

	divisionstore "github.com/imadiksi/orgsite/internal/app/store/divisions"
	eventstore "github.com/imadiksi/orgsite/internal/app/store/events"
	gallerystore "github.com/imadiksi/orgsite/internal/app/store/gallery"
	heroslidestore "github.com/imadiksi/orgsite/internal/app/store/heroslides"
	orgmemberstore "github.com/imadiksi/orgsite/internal/app/store/orgmembers"
	poststore "github.com/imadiksi/orgsite/internal/app/store/posts"
	programstore "github.com/imadiksi/orgsite/internal/app/store/programs"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// The per-collection gateway interfaces mirror the Mongo stores, which
// satisfy them directly. The service only ever touches these; tests
// substitute fakes.

type ProgramGateway interface {
	List(ctx context.Context) ([]models.Program, error)
	Create(ctx context.Context, p models.Program) (models.Program, error)
	Update(ctx context.Context, id primitive.ObjectID, in programstore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type PostGateway interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, p models.Post) (models.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, in poststore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type DivisionGateway interface {
	List(ctx context.Context) ([]models.Division, error)
	Create(ctx context.Context, d models.Division) (models.Division, error)
	Update(ctx context.Context, id primitive.ObjectID, in divisionstore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type GalleryGateway interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Create(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error)
	Update(ctx context.Context, id primitive.ObjectID, in gallerystore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type EventGateway interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, e models.Event) (models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, in eventstore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type HeroSlideGateway interface {
	ListActive(ctx context.Context) ([]models.HeroSlide, error)
	ListAll(ctx context.Context) ([]models.HeroSlide, error)
	Create(ctx context.Context, slide models.HeroSlide) (models.HeroSlide, error)
	Update(ctx context.Context, id primitive.ObjectID, in heroslidestore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type MemberGateway interface {
	List(ctx context.Context) ([]models.OrganizationMember, error)
	Create(ctx context.Context, m models.OrganizationMember) (models.OrganizationMember, error)
	Update(ctx context.Context, id primitive.ObjectID, in orgmemberstore.UpdateInput) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Gateway bundles the seven collection gateways the service reads and
// writes through.
type Gateway struct {
	Programs   ProgramGateway
	Posts      PostGateway
	Divisions  DivisionGateway
	Gallery    GalleryGateway
	Events     EventGateway
	HeroSlides HeroSlideGateway
	Members    MemberGateway
}

// NewGateway wires the gateway to the Mongo-backed stores.
func NewGateway(db *mongo.Database) Gateway {
	return Gateway{
		Programs:   programstore.New(db),
		Posts:      poststore.New(db),
		Divisions:  divisionstore.New(db),
		Gallery:    gallerystore.New(db),
		Events:     eventstore.New(db),
		HeroSlides: heroslidestore.New(db),
		Members:    orgmemberstore.New(db),
	}
}
