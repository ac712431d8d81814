package content

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	divisionstore "github.com/imadiksi/orgsite/internal/app/store/divisions"
	eventstore "github.com/imadiksi/orgsite/internal/app/store/events"
	gallerystore "github.com/imadiksi/orgsite/internal/app/store/gallery"
	heroslidestore "github.com/imadiksi/orgsite/internal/app/store/heroslides"
	orgmemberstore "github.com/imadiksi/orgsite/internal/app/store/orgmembers"
	poststore "github.com/imadiksi/orgsite/internal/app/store/posts"
	programstore "github.com/imadiksi/orgsite/internal/app/store/programs"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeColl is an in-memory stand-in for one collection store. Create
// prepends so listings behave like the newest-first collections.
type fakeColl[T any, P any] struct {
	mu        sync.Mutex
	items     []T
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	deleted   int64 // result of the next Delete
	listCalls int
	blockList chan struct{} // when set, List waits until it is closed
}

func (f *fakeColl[T, P]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	f.listCalls++
	block := f.blockList
	err := f.listErr
	items := append([]T(nil), f.items...)
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (f *fakeColl[T, P]) Create(ctx context.Context, item T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		var zero T
		return zero, f.createErr
	}
	f.items = append([]T{item}, f.items...)
	return item, nil
}

func (f *fakeColl[T, P]) Update(ctx context.Context, id primitive.ObjectID, in P) error {
	return f.updateErr
}

func (f *fakeColl[T, P]) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.deleted, nil
}

func (f *fakeColl[T, P]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// fakeSlides adds the active/all split of the hero-slide store.
type fakeSlides struct {
	fakeColl[models.HeroSlide, heroslidestore.UpdateInput]
	all []models.HeroSlide
}

func (f *fakeSlides) ListActive(ctx context.Context) ([]models.HeroSlide, error) {
	return f.List(ctx)
}

func (f *fakeSlides) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	return append([]models.HeroSlide(nil), f.all...), nil
}

type fakes struct {
	programs  *fakeColl[models.Program, programstore.UpdateInput]
	posts     *fakeColl[models.Post, poststore.UpdateInput]
	divisions *fakeColl[models.Division, divisionstore.UpdateInput]
	gallery   *fakeColl[models.GalleryItem, gallerystore.UpdateInput]
	events    *fakeColl[models.Event, eventstore.UpdateInput]
	slides    *fakeSlides
	members   *fakeColl[models.OrganizationMember, orgmemberstore.UpdateInput]
}

// totalListCalls counts refresh fan-outs across every collection.
func (f *fakes) totalListCalls() int {
	return f.programs.calls() + f.posts.calls() + f.divisions.calls() +
		f.gallery.calls() + f.events.calls() + f.slides.calls() + f.members.calls()
}

func newFakes() (*fakes, Gateway) {
	f := &fakes{
		programs:  &fakeColl[models.Program, programstore.UpdateInput]{deleted: 1},
		posts:     &fakeColl[models.Post, poststore.UpdateInput]{deleted: 1},
		divisions: &fakeColl[models.Division, divisionstore.UpdateInput]{deleted: 1},
		gallery:   &fakeColl[models.GalleryItem, gallerystore.UpdateInput]{deleted: 1},
		events:    &fakeColl[models.Event, eventstore.UpdateInput]{deleted: 1},
		slides:    &fakeSlides{},
		members:   &fakeColl[models.OrganizationMember, orgmemberstore.UpdateInput]{deleted: 1},
	}
	f.slides.deleted = 1
	gw := Gateway{
		Programs:   f.programs,
		Posts:      f.posts,
		Divisions:  f.divisions,
		Gallery:    f.gallery,
		Events:     f.events,
		HeroSlides: f.slides,
		Members:    f.members,
	}
	return f, gw
}

func newTestService(t *testing.T) (*fakes, *Service) {
	t.Helper()
	f, gw := newFakes()
	svc := NewService(gw, zap.NewNop())
	t.Cleanup(svc.Close)
	return f, svc
}

func TestRefreshAll_PopulatesAllCollections(t *testing.T) {
	f, svc := newTestService(t)

	f.programs.items = []models.Program{{Title: "Seminar"}, {Title: "Mentoring"}}
	f.posts.items = []models.Post{{Title: "Berita", Slug: "berita"}}
	f.divisions.items = []models.Division{{Name: "Media", Slug: "media"}}
	f.gallery.items = []models.GalleryItem{{ImageURL: "https://cdn/x.jpg"}}
	f.events.items = []models.Event{{Title: "Rapat", Date: "2026-10-01"}}
	f.slides.items = []models.HeroSlide{{ImageURL: "https://cdn/hero.jpg", IsActive: true}}
	f.members.items = []models.OrganizationMember{{Name: "Andi", Rank: models.RankKetuaUmum, IsActive: true}}

	if st := svc.State(); !st.Loading {
		t.Error("expected Loading before the first refresh")
	}
	if err := svc.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll failed: %v", err)
	}

	st := svc.State()
	if st.Loading {
		t.Error("Loading should be false after refresh")
	}
	if st.Err != "" {
		t.Errorf("Err should be empty, got %q", st.Err)
	}
	if len(st.Programs) != 2 || st.Programs[0].Title != "Seminar" {
		t.Errorf("programs not cached in gateway order: %+v", st.Programs)
	}
	if len(st.Posts) != 1 || st.Posts[0].Slug != "berita" {
		t.Errorf("posts not cached: %+v", st.Posts)
	}
	if len(st.Divisions) != 1 || len(st.Gallery) != 1 || len(st.Events) != 1 {
		t.Error("divisions/gallery/events not cached")
	}
	if len(st.HeroSlides) != 1 || len(st.OrganizationMembers) != 1 {
		t.Error("hero slides / members not cached")
	}
}

func TestRefreshAll_FailureLeavesCacheUntouched(t *testing.T) {
	f, svc := newTestService(t)

	f.programs.items = []models.Program{{Title: "Seminar"}}
	if err := svc.RefreshAll(context.Background()); err != nil {
		t.Fatalf("first RefreshAll failed: %v", err)
	}

	f.programs.items = []models.Program{{Title: "Seminar"}, {Title: "Baru"}}
	f.events.listErr = errors.New("connection reset")

	err := svc.RefreshAll(context.Background())
	if err == nil {
		t.Fatal("expected RefreshAll to fail")
	}

	st := svc.State()
	if st.Loading {
		t.Error("Loading should be false after a failed refresh")
	}
	if !strings.Contains(st.Err, "connection reset") {
		t.Errorf("Err should carry the cause, got %q", st.Err)
	}
	// The previous snapshot survives in full: no partial overwrite even
	// though the programs read itself succeeded.
	if len(st.Programs) != 1 {
		t.Errorf("programs changed on failed refresh: %+v", st.Programs)
	}
}

func TestAdd_SuccessTriggersExactlyOneRefresh(t *testing.T) {
	f, svc := newTestService(t)

	created, err := svc.AddProgram(context.Background(), models.Program{
		Title:  "Seminar X",
		Status: models.ProgramUpcoming,
		Tags:   []string{"pendidikan"},
	})
	if err != nil {
		t.Fatalf("AddProgram failed: %v", err)
	}
	if created.Title != "Seminar X" {
		t.Errorf("created.Title = %q", created.Title)
	}
	if got := f.totalListCalls(); got != 7 {
		t.Errorf("expected one refresh fan-out (7 list calls), got %d", got)
	}

	st := svc.State()
	if len(st.Programs) != 1 || st.Programs[0].Status != models.ProgramUpcoming {
		t.Errorf("program not visible after refetch: %+v", st.Programs)
	}
	if len(st.Programs[0].Tags) != 1 || st.Programs[0].Tags[0] != "pendidikan" {
		t.Errorf("tags not preserved: %+v", st.Programs[0].Tags)
	}
}

func TestAdd_GatewayFailureSkipsRefresh(t *testing.T) {
	f, svc := newTestService(t)

	gwErr := errors.New("insert rejected")
	f.posts.createErr = gwErr

	_, err := svc.AddPost(context.Background(), models.Post{Title: "x"})
	if !errors.Is(err, gwErr) {
		t.Fatalf("expected the gateway error, got %v", err)
	}
	if got := f.totalListCalls(); got != 0 {
		t.Errorf("refresh must not run on gateway failure, got %d list calls", got)
	}
}

func TestUpdate_FailurePropagatesWithoutRefresh(t *testing.T) {
	f, svc := newTestService(t)

	gwErr := errors.New("update rejected")
	f.events.updateErr = gwErr

	err := svc.UpdateEvent(context.Background(), primitive.NewObjectID(), eventstore.UpdateInput{})
	if !errors.Is(err, gwErr) {
		t.Fatalf("expected the gateway error, got %v", err)
	}
	if got := f.totalListCalls(); got != 0 {
		t.Errorf("refresh must not run on gateway failure, got %d list calls", got)
	}
}

func TestDelete_SecondDeleteReturnsNotFound(t *testing.T) {
	f, svc := newTestService(t)

	id := primitive.NewObjectID()
	if err := svc.DeleteGalleryItem(context.Background(), id); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if got := f.totalListCalls(); got != 7 {
		t.Errorf("expected one refresh after the first delete, got %d list calls", got)
	}

	// The record is gone now; the gateway reports zero deletions.
	f.gallery.deleted = 0
	err := svc.DeleteGalleryItem(context.Background(), id)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
	if got := f.totalListCalls(); got != 7 {
		t.Errorf("repeat delete must not refresh, got %d list calls", got)
	}
}

func TestHeroSlideDeactivation_PublicVsAdminView(t *testing.T) {
	f, svc := newTestService(t)

	active := models.HeroSlide{ID: primitive.NewObjectID(), ImageURL: "a.jpg", IsActive: true}
	hidden := models.HeroSlide{ID: primitive.NewObjectID(), ImageURL: "b.jpg", IsActive: false}
	f.slides.items = []models.HeroSlide{active}
	f.slides.all = []models.HeroSlide{active, hidden}

	if err := svc.UpdateHeroSlide(context.Background(), hidden.ID, heroslidestore.UpdateInput{}); err != nil {
		t.Fatalf("UpdateHeroSlide failed: %v", err)
	}

	st := svc.State()
	for _, sl := range st.HeroSlides {
		if sl.ID == hidden.ID {
			t.Error("inactive slide leaked into the public snapshot")
		}
	}

	all, err := svc.AllHeroSlides(context.Background())
	if err != nil {
		t.Fatalf("AllHeroSlides failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin view should include inactive slides, got %d", len(all))
	}
}

func TestRefreshAll_StaleResultDiscarded(t *testing.T) {
	f, svc := newTestService(t)

	f.programs.items = []models.Program{{Title: "Lama"}}
	release := make(chan struct{})
	f.programs.blockList = release

	done := make(chan error, 1)
	go func() {
		done <- svc.RefreshAll(context.Background())
	}()

	// Wait for the slow refresh to reach the blocked read.
	deadline := time.After(2 * time.Second)
	for f.programs.calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("slow refresh never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	// A newer refresh with fresher data completes first.
	f.programs.mu.Lock()
	f.programs.blockList = nil
	f.programs.items = []models.Program{{Title: "Baru"}, {Title: "Lama"}}
	f.programs.mu.Unlock()
	if err := svc.RefreshAll(context.Background()); err != nil {
		t.Fatalf("newer RefreshAll failed: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("older RefreshAll errored: %v", err)
	}

	st := svc.State()
	if len(st.Programs) != 2 || st.Programs[0].Title != "Baru" {
		t.Errorf("stale refresh overwrote fresher data: %+v", st.Programs)
	}
}

func TestClose(t *testing.T) {
	_, gw := newFakes()
	svc := NewService(gw, zap.NewNop())
	svc.Close()

	if err := svc.RefreshAll(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("RefreshAll after Close = %v, want ErrClosed", err)
	}
	if _, err := svc.AddEvent(context.Background(), models.Event{}); !errors.Is(err, ErrClosed) {
		t.Errorf("AddEvent after Close = %v, want ErrClosed", err)
	}
}
