// Package service contains the interaction boundary between the feed core
// and the presentation layer.
package service

import (
	"context"

	"echowall/internal/feed"
	"echowall/internal/models"
	"echowall/internal/prefs"
	"echowall/internal/store"
)

// Renderer consumes the recomputed view after each user action. Rendering is
// presentation glue; the service exposes no UI state of its own.
type Renderer interface {
	Render(view []models.Post)
}

// FeedService owns the session identity and the projection inputs, gates
// ownership on edit and remove, and pushes a freshly computed view to the
// renderer after every mutation. The store itself stays ownership-blind.
type FeedService struct {
	store    store.PostStore
	prefs    *prefs.Store
	user     models.User
	renderer Renderer
	term     string
	mode     feed.SortMode
}

// NewFeedService creates the service for the given session user. The search
// term and sort mode are seeded from the current preferences; renderer may be
// nil for headless use.
func NewFeedService(postStore store.PostStore, prefStore *prefs.Store, user models.User, renderer Renderer) *FeedService {
	p := prefStore.Current()
	mode := p.SortMode
	if mode == "" {
		mode = feed.SortLatest
	}
	return &FeedService{
		store:    postStore,
		prefs:    prefStore,
		user:     user,
		renderer: renderer,
		term:     p.SearchTerm,
		mode:     mode,
	}
}

// Compose creates a new post authored by the session user.
func (s *FeedService) Compose(ctx context.Context, text, imageURL string) (*models.Post, error) {
	post, err := s.store.Create(ctx, s.user.ID, s.user.Name, text, imageURL)
	if err != nil {
		return nil, err
	}
	s.Refresh()
	return post, nil
}

// Edit updates a post owned by the session user. Editing someone else's post
// fails with UNAUTHORIZED before the store is touched.
func (s *FeedService) Edit(ctx context.Context, id, text, imageURL string) (*models.Post, error) {
	if err := s.authorize(id, "You can only edit your own posts"); err != nil {
		return nil, err
	}
	post, err := s.store.Update(ctx, id, text, imageURL)
	if err != nil {
		return nil, err
	}
	s.Refresh()
	return post, nil
}

// Remove deletes a post owned by the session user. Removing a post that no
// longer exists is a no-op, matching the store's idempotent delete.
func (s *FeedService) Remove(ctx context.Context, id string) error {
	if err := s.authorize(id, "You can only delete your own posts"); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// ToggleLike flips the viewer's like on a post. Anyone may like any post.
func (s *FeedService) ToggleLike(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.store.ToggleLike(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Refresh()
	return post, nil
}

// Search updates the filter term, persists it, and re-renders.
func (s *FeedService) Search(ctx context.Context, term string) error {
	s.term = term
	if err := s.savePrefs(ctx); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// SortBy updates the sort mode, persists it, and re-renders. Unrecognized
// modes fall through to canonical order in the projection.
func (s *FeedService) SortBy(ctx context.Context, mode feed.SortMode) error {
	s.mode = mode
	if err := s.savePrefs(ctx); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// ToggleTheme flips the persisted theme and returns the new value.
func (s *FeedService) ToggleTheme(ctx context.Context) (string, error) {
	return s.prefs.ToggleTheme(ctx)
}

// View returns the current projection: the canonical collection filtered by
// the search term and ordered by the sort mode. It is recomputed on every
// call and never patched.
func (s *FeedService) View() []models.Post {
	return feed.Project(s.store.All(), s.term, s.mode)
}

// CanModify reports whether the session user owns the post. The renderer uses
// this to decide which action controls to show.
func (s *FeedService) CanModify(post models.Post) bool {
	return post.UserID == s.user.ID
}

// User returns the session identity.
func (s *FeedService) User() models.User {
	return s.user
}

// Refresh recomputes the view and pushes it to the renderer, if any.
func (s *FeedService) Refresh() {
	if s.renderer != nil {
		s.renderer.Render(s.View())
	}
}

func (s *FeedService) authorize(id, denied string) error {
	for _, p := range s.store.All() {
		if p.ID == id {
			if p.UserID != s.user.ID {
				return models.NewUnauthorizedError(denied)
			}
			return nil
		}
	}
	// Unknown ids fall through to the store, which decides whether that is
	// an error (update) or a no-op (delete).
	return nil
}

func (s *FeedService) savePrefs(ctx context.Context) error {
	p := s.prefs.Current()
	p.SearchTerm = s.term
	p.SortMode = s.mode
	return s.prefs.Save(ctx, p)
}
