// internal/app/content/service.go

// Package content holds the site's content cache: an in-memory copy of
// the seven public collections, replaced atomically by a coordinated
// refresh and invalidated by refetching after every successful
// mutation. Page handlers read the cache; only the admin mutation
// façade talks to the gateway.
package content

import (
	"context"
	"errors"
	"sync"

	"github.com/imadiksi/orgsite/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrClosed is returned by operations on a closed service.
	ErrClosed = errors.New("content service is closed")

	// ErrNotFound is returned by delete operations when no record has
	// the given identifier (e.g. it was already deleted).
	ErrNotFound = errors.New("record not found")
)

// Snapshot is the cached copy of all seven collections, each in its
// serving order (see the stores). Consumers treat the slices as
// read-only.
type Snapshot struct {
	Programs            []models.Program
	Posts               []models.Post
	Divisions           []models.Division
	Gallery             []models.GalleryItem
	Events              []models.Event
	HeroSlides          []models.HeroSlide // active slides only
	OrganizationMembers []models.OrganizationMember
}

// State is a snapshot plus the refresh status flags.
type State struct {
	Snapshot
	Loading bool
	Err     string // human-readable message from the last failed refresh
}

// Service owns the snapshot. It is constructed once in bootstrap and
// handed to the handlers that need it; Close releases it (mainly for
// test isolation).
type Service struct {
	gw  Gateway
	log *zap.Logger

	mu      sync.RWMutex
	snap    Snapshot
	loading bool
	err     string
	gen     uint64
	closed  bool
}

// NewService creates a content service over the given gateway. The
// cache starts empty; call RefreshAll to populate it.
func NewService(gw Gateway, logger *zap.Logger) *Service {
	return &Service{gw: gw, log: logger, loading: true}
}

// State returns the current snapshot and status flags.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Snapshot: s.snap, Loading: s.loading, Err: s.err}
}

// RefreshAll refetches all seven collections concurrently and, if
// every read succeeds, replaces the snapshot in one step. If any read
// fails the snapshot is left exactly as it was and Err carries the
// failure; the remaining in-flight reads are abandoned (fail-fast).
//
// A refresh that finishes after a newer refresh has started discards
// its result so stale data never overwrites fresher data.
func (s *Service) RefreshAll(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.gen++
	gen := s.gen
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	var next Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		next.Programs, err = s.gw.Programs.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		next.Posts, err = s.gw.Posts.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		next.Divisions, err = s.gw.Divisions.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		next.Gallery, err = s.gw.Gallery.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		next.Events, err = s.gw.Events.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		next.HeroSlides, err = s.gw.HeroSlides.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		next.OrganizationMembers, err = s.gw.Members.List(gctx)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.gen != gen {
		// A newer refresh owns the status flags now; drop this result.
		return err
	}
	s.loading = false
	if err != nil {
		s.err = "failed to refresh content: " + err.Error()
		s.log.Error("content refresh failed", zap.Error(err))
		return err
	}
	s.snap = next
	return nil
}

// AllHeroSlides returns every slide including inactive ones, for the
// admin panel. This is a pass-through read, not served from the cache,
// which holds active slides only.
func (s *Service) AllHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	return s.gw.HeroSlides.ListAll(ctx)
}

// Close marks the service closed. Later refreshes and mutations return
// ErrClosed; the last snapshot stays readable.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// refreshAfterMutation runs the post-mutation refetch. The mutation
// itself already succeeded, so a refresh failure is reported through
// the store's error state and the log rather than to the caller.
func (s *Service) refreshAfterMutation(ctx context.Context) {
	if err := s.RefreshAll(ctx); err != nil && !errors.Is(err, ErrClosed) {
		s.log.Warn("post-mutation refresh failed; cache is stale until the next refresh",
			zap.Error(err))
	}
}

func (s *Service) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
