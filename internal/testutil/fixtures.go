package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	userstore "github.com/imadiksi/orgsite/internal/app/store/users"
	"github.com/imadiksi/orgsite/internal/app/system/slugutil"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, collection string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", collection, err)
	}
}

// CreateProgram creates a test program with the given title.
func (f *Fixtures) CreateProgram(ctx context.Context, title string) models.Program {
	f.t.Helper()
	p := models.Program{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Summary:   "Test program summary",
		Status:    models.ProgramOngoing,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "programs", p)
	return p
}

// CreatePost creates a test post; the slug is derived from the title.
func (f *Fixtures) CreatePost(ctx context.Context, title string) models.Post {
	f.t.Helper()
	p := models.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Slug:      slugutil.Make(title),
		Content:   "<p>Test body</p>",
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "posts", p)
	return p
}

// CreateDivision creates a test division with the given name.
func (f *Fixtures) CreateDivision(ctx context.Context, name string) models.Division {
	f.t.Helper()
	d := models.Division{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Slug:        slugutil.Make(name),
		Description: "Test division",
		CreatedAt:   time.Now().UTC(),
	}
	f.insert(ctx, "divisions", d)
	return d
}

// CreateGalleryItem creates a test gallery photo.
func (f *Fixtures) CreateGalleryItem(ctx context.Context, title string) models.GalleryItem {
	f.t.Helper()
	g := models.GalleryItem{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Category:  "kegiatan",
		ImageURL:  "https://cdn.example.com/test.jpg",
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "gallery", g)
	return g
}

// CreateEvent creates a test event on the given ISO date (yyyy-mm-dd).
func (f *Fixtures) CreateEvent(ctx context.Context, title, date string) models.Event {
	f.t.Helper()
	e := models.Event{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Date:      date,
		Location:  "Test Hall",
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "events", e)
	return e
}

// CreateHeroSlide creates a test hero slide.
func (f *Fixtures) CreateHeroSlide(ctx context.Context, orderIndex int, active bool) models.HeroSlide {
	f.t.Helper()
	s := models.HeroSlide{
		ID:         primitive.NewObjectID(),
		ImageURL:   "https://cdn.example.com/hero.jpg",
		Title:      "Test Slide",
		OrderIndex: orderIndex,
		IsActive:   active,
		CreatedAt:  time.Now().UTC(),
	}
	f.insert(ctx, "hero_slides", s)
	return s
}

// CreateAdmin creates an admin user with the given plaintext password
// via the user store so the hash round-trips through VerifyPassword.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()
	u, err := userstore.New(f.db).Create(ctx, models.User{
		Name:  name,
		Email: email,
		Role:  models.RoleAdmin,
	}, password)
	if err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}
	return u
}

// CreateMember creates a test organization member. Pass a nil
// divisionID for a core-leadership member.
func (f *Fixtures) CreateMember(ctx context.Context, name, position string, divisionID *primitive.ObjectID) models.OrganizationMember {
	f.t.Helper()
	m := models.OrganizationMember{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Position:   position,
		Rank:       models.RankAnggota,
		DivisionID: divisionID,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
	f.insert(ctx, "organization_members", m)
	return m
}
