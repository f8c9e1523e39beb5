package board

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/models"
)

// PostLister loads the full post collection. *api.Client satisfies this;
// tests substitute an in-memory implementation.
type PostLister interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
}

// Store is the single source of truth for the post collection, shared by
// every screen. Mutations go through FetchAll and the patch methods only.
type Store struct {
	mu      sync.Mutex
	backend PostLister
	log     zerolog.Logger

	posts   []models.Post
	loading bool
	err     error
	subs    map[int]chan struct{}
	nextSub int
}

// NewStore creates an empty board store
func NewStore(backend PostLister, log zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log,
		subs:    make(map[int]chan struct{}),
	}
}

// FetchAll reloads the full collection from the backend. On failure the
// previous collection stays in place and the error is recorded for display.
func (s *Store) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	posts, err := s.backend.ListPosts(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err
		s.mu.Unlock()
		s.notify()
		s.log.Warn().Err(err).Msg("Failed to fetch board")
		return err
	}
	s.posts = posts
	s.err = nil
	s.mu.Unlock()
	s.notify()

	s.log.Debug().Int("count", len(posts)).Msg("Board fetched")
	return nil
}

// PatchLikeState mirrors a like-toggle response into the cached collection
// without a reload. Only the targeted post's like fields change.
func (s *Store) PatchLikeState(postID int64, likeCount int, liked bool) {
	s.mu.Lock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].LikeCount = likeCount
			s.posts[i].IsLiked = liked
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// PatchSaveState mirrors a save-toggle response into the cached collection
func (s *Store) PatchSaveState(postID int64, saved bool) {
	s.mu.Lock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].IsSaved = saved
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Posts returns a copy of the cached collection
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Loading reports whether a fetch is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failed fetch, if any
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Subscribe registers for change notifications. The channel is coalescing:
// a slow reader sees at least one signal for any burst of updates. The
// returned func unsubscribes.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
