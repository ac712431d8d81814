// internal/app/content/mutations.go
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
)

// The mutation façade: every write goes to the gateway first, and only
// a successful write triggers the full refetch. A gateway failure is
// returned to the caller with the cache untouched. There is no
// batching, no retry, and no optimistic patching.

// --- Programs ---

func (s *Service) AddProgram(ctx context.Context, p models.Program) (models.Program, error) {
	if s.isClosed() {
		return models.Program{}, ErrClosed
	}
	created, err := s.gw.Programs.Create(ctx, p)
	if err != nil {
		return models.Program{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdateProgram(ctx context.Context, id primitive.ObjectID, in programstore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.Programs.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeleteProgram(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.Programs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}

// --- Posts ---

func (s *Service) AddPost(ctx context.Context, p models.Post) (models.Post, error) {
	if s.isClosed() {
		return models.Post{}, ErrClosed
	}
	created, err := s.gw.Posts.Create(ctx, p)
	if err != nil {
		return models.Post{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdatePost(ctx context.Context, id primitive.ObjectID, in poststore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.Posts.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.Posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}

// --- Divisions ---

func (s *Service) AddDivision(ctx context.Context, d models.Division) (models.Division, error) {
	if s.isClosed() {
		return models.Division{}, ErrClosed
	}
	created, err := s.gw.Divisions.Create(ctx, d)
	if err != nil {
		return models.Division{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdateDivision(ctx context.Context, id primitive.ObjectID, in divisionstore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.Divisions.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeleteDivision(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.Divisions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}

// --- Gallery ---

func (s *Service) AddGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	if s.isClosed() {
		return models.GalleryItem{}, ErrClosed
	}
	created, err := s.gw.Gallery.Create(ctx, item)
	if err != nil {
		return models.GalleryItem{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdateGalleryItem(ctx context.Context, id primitive.ObjectID, in gallerystore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.Gallery.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.Gallery.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}

// --- Events ---

func (s *Service) AddEvent(ctx context.Context, e models.Event) (models.Event, error) {
	if s.isClosed() {
		return models.Event{}, ErrClosed
	}
	created, err := s.gw.Events.Create(ctx, e)
	if err != nil {
		return models.Event{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id primitive.ObjectID, in eventstore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.Events.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.Events.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}

// --- Hero slides ---

func (s *Service) AddHeroSlide(ctx context.Context, slide models.HeroSlide) (models.HeroSlide, error) {
	if s.isClosed() {
		return models.HeroSlide{}, ErrClosed
	}
	created, err := s.gw.HeroSlides.Create(ctx, slide)
	if err != nil {
		return models.HeroSlide{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdateHeroSlide(ctx context.Context, id primitive.ObjectID, in heroslidestore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.HeroSlides.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeleteHeroSlide(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.HeroSlides.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}

// --- Organization members ---

func (s *Service) AddOrganizationMember(ctx context.Context, m models.OrganizationMember) (models.OrganizationMember, error) {
	if s.isClosed() {
		return models.OrganizationMember{}, ErrClosed
	}
	created, err := s.gw.Members.Create(ctx, m)
	if err != nil {
		return models.OrganizationMember{}, err
	}
	s.refreshAfterMutation(ctx)
	return created, nil
}

func (s *Service) UpdateOrganizationMember(ctx context.Context, id primitive.ObjectID, in orgmemberstore.UpdateInput) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.gw.Members.Update(ctx, id, in); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx)
	return nil
}

func (s *Service) DeleteOrganizationMember(ctx context.Context, id primitive.ObjectID) error {
	if s.isClosed() {
		return ErrClosed
	}
	n, err := s.gw.Members.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.refreshAfterMutation(ctx)
	return nil
}
