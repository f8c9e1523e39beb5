package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/api"
	"github.com/cheonTH/singlelife/internal/models"
)

// ErrEmptyReview is returned when a blank review is submitted; no request
// is sent.
var ErrEmptyReview = errors.New("review text is empty")

// Backend is the slice of the REST client the review service needs
type Backend interface {
	ListReviews(ctx context.Context, placeID string) ([]models.Review, error)
	CreateReview(ctx context.Context, req api.CreateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// Identity yields the viewer's identity when logged in. The session store
// implements this.
type Identity interface {
	Identity() (userID, nickName string, ok bool)
}

// Service presents one place's reviews as a paged window and enforces the
// one-review-per-user rule client-side.
type Service struct {
	backend Backend
	ident   Identity
	log     zerolog.Logger

	mu    sync.Mutex
	place models.Place
	list  []models.Review
	my    *models.Review
	pager *Pager
}

// NewService creates a review service with the given page size
func NewService(backend Backend, ident Identity, pageSize int, log zerolog.Logger) *Service {
	return &Service{
		backend: backend,
		ident:   ident,
		log:     log,
		pager:   NewPager(pageSize),
	}
}

// Load reloads the full review list for a place and resets to page 1.
// The viewer's own review is re-detected on every load.
func (s *Service) Load(ctx context.Context, place models.Place) error {
	list, err := s.backend.ListReviews(ctx, place.ID)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.place = place
	s.list = list
	s.pager.Reset()
	s.pager.SetTotal(len(list))
	s.my = nil
	if userID, _, ok := s.ident.Identity(); ok {
		for i := range list {
			if list[i].UserID == userID {
				my := list[i]
				s.my = &my
				break
			}
		}
	}
	return nil
}

// Submit posts the viewer's review for the loaded place. Blank text and a
// pre-existing review are rejected before any request is sent.
func (s *Service) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyReview
	}
	userID, nickName, ok := s.ident.Identity()
	if !ok {
		return api.ErrAuthRequired
	}

	s.mu.Lock()
	place := s.place
	hasMine := s.my != nil
	s.mu.Unlock()
	if hasMine {
		return api.ErrConflict
	}

	_, err := s.backend.CreateReview(ctx, api.CreateReviewRequest{
		PlaceID:   place.ID,
		PlaceName: place.Name,
		Review:    strings.TrimSpace(text),
		UserID:    userID,
		NickName:  nickName,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("place_id", place.ID).Msg("Review submitted")
	return s.Load(ctx, place)
}

// Delete removes a review and reloads the list back on page 1
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteReview(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	place := s.place
	s.mu.Unlock()
	s.log.Info().Int64("review_id", id).Str("place_id", place.ID).Msg("Review deleted")
	return s.Load(ctx, place)
}

// MyReview returns a copy of the viewer's review for the loaded place
func (s *Service) MyReview() (models.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.my == nil {
		return models.Review{}, false
	}
	return *s.my, true
}

// PageReviews returns the reviews on the current page
func (s *Service) PageReviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	from, to := s.pager.Bounds()
	out := make([]models.Review, to-from)
	copy(out, s.list[from:to])
	return out
}

// Page returns the current page and the page count
func (s *Service) Page() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Page(), s.pager.TotalPages()
}

// Next moves to the next page; past the last page it is a no-op
func (s *Service) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Next()
}

// Prev moves to the previous page; below page 1 it is a no-op
func (s *Service) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Prev()
}
