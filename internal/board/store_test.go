package board

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/models"
)

type fakeLister struct {
	posts []models.Post
	err   error
}

func (f *fakeLister) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.posts, f.err
}

func TestStoreFetchAll(t *testing.T) {
	backend := &fakeLister{posts: []models.Post{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}}
	store := NewStore(backend, zerolog.Nop())

	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if got := store.Posts(); len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	if store.Loading() {
		t.Fatal("loading flag still set after fetch")
	}
	if store.Err() != nil {
		t.Fatalf("unexpected error recorded: %v", store.Err())
	}
}

func TestStoreFetchAllFailureKeepsPosts(t *testing.T) {
	backend := &fakeLister{posts: []models.Post{{ID: 1}}}
	store := NewStore(backend, zerolog.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	wantErr := errors.New("backend down")
	backend.err = wantErr
	if err := store.FetchAll(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}

	if got := store.Posts(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("previous posts lost on failed refresh: %v", got)
	}
	if !errors.Is(store.Err(), wantErr) {
		t.Fatalf("Err() = %v, want %v", store.Err(), wantErr)
	}

	// A later successful fetch clears the recorded error.
	backend.err = nil
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("recovery fetch: %v", err)
	}
	if store.Err() != nil {
		t.Fatalf("error not cleared after recovery: %v", store.Err())
	}
}

func TestStorePatchLikeState(t *testing.T) {
	backend := &fakeLister{posts: []models.Post{
		{ID: 1, LikeCount: 3},
		{ID: 2, LikeCount: 7},
	}}
	store := NewStore(backend, zerolog.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	store.PatchLikeState(1, 4, true)

	posts := store.Posts()
	if posts[0].LikeCount != 4 || !posts[0].IsLiked {
		t.Fatalf("target post not patched: %+v", posts[0])
	}
	if posts[1].LikeCount != 7 || posts[1].IsLiked {
		t.Fatalf("unrelated post changed: %+v", posts[1])
	}
}

func TestStorePatchSaveState(t *testing.T) {
	backend := &fakeLister{posts: []models.Post{{ID: 1}, {ID: 2}}}
	store := NewStore(backend, zerolog.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	store.PatchSaveState(2, true)

	posts := store.Posts()
	if posts[0].IsSaved {
		t.Fatalf("unrelated post changed: %+v", posts[0])
	}
	if !posts[1].IsSaved {
		t.Fatalf("target post not patched: %+v", posts[1])
	}
}

func TestStoreSubscribe(t *testing.T) {
	backend := &fakeLister{}
	store := NewStore(backend, zerolog.Nop())

	ch, cancel := store.Subscribe()
	defer cancel()

	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	select {
	case <-ch:
	default:
		t.Fatal("no notification after fetch")
	}

	// Burst of updates coalesces into at least one pending signal.
	store.PatchLikeState(1, 1, true)
	store.PatchSaveState(1, true)
	select {
	case <-ch:
	default:
		t.Fatal("no notification after patches")
	}

	cancel()
	store.PatchSaveState(1, false)
	select {
	case <-ch:
		t.Fatal("notified after unsubscribe")
	default:
	}
}

func TestStorePostsReturnsCopy(t *testing.T) {
	backend := &fakeLister{posts: []models.Post{{ID: 1, Title: "original"}}}
	store := NewStore(backend, zerolog.Nop())
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	got := store.Posts()
	got[0].Title = "mutated"

	if store.Posts()[0].Title != "original" {
		t.Fatal("caller mutation leaked into the store")
	}
}
