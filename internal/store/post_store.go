// Package store owns the canonical post collection and keeps it synchronized
// with the persistent key-value store.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"echowall/internal/kv"
	"echowall/internal/models"
	"echowall/internal/observability"

	"github.com/google/uuid"
)

// PostStore is the single source of truth for posts. The collection is kept
// in canonical order (newest first by creation) and every mutation is written
// through to the key-value store before it returns.
//
// PostStore does not enforce ownership; that check belongs to the caller at
// the interaction boundary.
type PostStore interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, userID, userName, text, imageURL string) (*models.Post, error)
	Update(ctx context.Context, id, text, imageURL string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id string) (*models.Post, error)
	All() []models.Post
}

// postStore implements PostStore
type postStore struct {
	kv    kv.Store
	key   string
	now   func() time.Time
	log   *observability.StoreLogger
	posts []models.Post
}

// Option configures a postStore.
type Option func(*postStore)

// WithClock overrides the creation-timestamp source. Used by tests and the
// demo seeder to produce deterministic or backdated posts.
func WithClock(now func() time.Time) Option {
	return func(s *postStore) {
		s.now = now
	}
}

// New creates a post store persisting under key in kvStore. Call Load before
// any other operation.
func New(kvStore kv.Store, key string, opts ...Option) PostStore {
	s := &postStore{
		kv:  kvStore,
		key: key,
		now: time.Now,
		log: observability.NewStoreLogger("posts"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load populates the collection from the persisted blob. A missing blob means
// an empty collection; a malformed blob is logged and degraded to an empty
// collection rather than refusing to start. Load never writes.
func (s *postStore) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}
	if !ok {
		s.posts = nil
		return nil
	}
	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		s.log.LogError(ctx, err, "load")
		s.posts = nil
		return nil
	}
	s.posts = posts
	return nil
}

func (s *postStore) Create(ctx context.Context, userID, userName, text, imageURL string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Post text is required")
	}

	post := models.Post{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: userName,
		Text:     text,
		ImageURL: strings.TrimSpace(imageURL),
		Time:     s.now(),
	}

	next := make([]models.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.posts = next

	s.log.LogOp(ctx, "create", map[string]interface{}{"post_id": post.ID, "user_id": userID})
	return &post, nil
}

func (s *postStore) Update(ctx context.Context, id, text, imageURL string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Post text is required")
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("post", id)
	}

	next := s.clone()
	next[idx].Text = text
	next[idx].ImageURL = strings.TrimSpace(imageURL)
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.posts = next

	updated := next[idx]
	s.log.LogOp(ctx, "update", map[string]interface{}{"post_id": id})
	return &updated, nil
}

// Delete removes the post with the given id. An unknown id is a harmless
// no-op, which makes Delete idempotent.
func (s *postStore) Delete(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := make([]models.Post, 0, len(s.posts)-1)
	next = append(next, s.posts[:idx]...)
	next = append(next, s.posts[idx+1:]...)
	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.posts = next

	s.log.LogOp(ctx, "delete", map[string]interface{}{"post_id": id})
	return nil
}

// ToggleLike flips the viewer's like flag and adjusts the like count by one.
// The flag and the count only ever change together. An unknown id is a no-op
// returning (nil, nil).
func (s *postStore) ToggleLike(ctx context.Context, id string) (*models.Post, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	next := s.clone()
	p := &next[idx]
	if p.IsLiked {
		p.IsLiked = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.IsLiked = true
		p.Likes++
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.posts = next

	toggled := next[idx]
	s.log.LogOp(ctx, "like", map[string]interface{}{"post_id": id, "liked": toggled.IsLiked})
	return &toggled, nil
}

// All returns the collection in canonical order. The returned posts are
// copies; mutations must go through the store operations.
func (s *postStore) All() []models.Post {
	return s.clone()
}

func (s *postStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *postStore) clone() []models.Post {
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// save overwrites the whole persisted collection. The in-memory slice is only
// swapped in by the caller after save succeeds, so a failed write leaves the
// observable state untouched. Not crash-safe mid-write; there is exactly one
// writer.
func (s *postStore) save(ctx context.Context, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	b, err := json.Marshal(posts)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		s.log.LogError(ctx, err, "persist")
		return fmt.Errorf("persist posts: %w", err)
	}
	return nil
}
