// Package prefs persists the viewer's display preferences (theme, sort mode,
// search term) alongside the feed so they survive restarts.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"echowall/internal/feed"
	"echowall/internal/kv"
	"echowall/internal/observability"
)

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences holds the viewer's persisted display settings.
type Preferences struct {
	Theme      string        `json:"theme"`
	SortMode   feed.SortMode `json:"sortMode"`
	SearchTerm string        `json:"searchTerm"`
}

// Store keeps Preferences synchronized with a key-value blob.
type Store struct {
	kv       kv.Store
	key      string
	defaults Preferences
	current  Preferences
	log      *observability.StoreLogger
}

// NewStore creates a preferences store persisting under key in kvStore.
// defaults are used until Load and whenever the blob is absent or malformed.
func NewStore(kvStore kv.Store, key string, defaults Preferences) *Store {
	if defaults.Theme == "" {
		defaults.Theme = ThemeLight
	}
	if defaults.SortMode == "" {
		defaults.SortMode = feed.SortLatest
	}
	return &Store{
		kv:       kvStore,
		key:      key,
		defaults: defaults,
		current:  defaults,
		log:      observability.NewStoreLogger("prefs"),
	}
}

// Load reads the persisted preferences. Absent or malformed data degrades to
// the defaults.
func (s *Store) Load(ctx context.Context) (Preferences, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return s.current, fmt.Errorf("load preferences: %w", err)
	}
	if !ok {
		s.current = s.defaults
		return s.current, nil
	}
	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.log.LogError(ctx, err, "load")
		s.current = s.defaults
		return s.current, nil
	}
	if p.Theme != ThemeLight && p.Theme != ThemeDark {
		p.Theme = s.defaults.Theme
	}
	if p.SortMode == "" {
		p.SortMode = s.defaults.SortMode
	}
	s.current = p
	return s.current, nil
}

// Current returns the preferences as last loaded or saved.
func (s *Store) Current() Preferences {
	return s.current
}

// Save persists p and makes it current.
func (s *Store) Save(ctx context.Context, p Preferences) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		s.log.LogError(ctx, err, "persist")
		return fmt.Errorf("persist preferences: %w", err)
	}
	s.current = p
	return nil
}

// ToggleTheme flips between light and dark, persists, and returns the new
// theme.
func (s *Store) ToggleTheme(ctx context.Context) (string, error) {
	next := s.current
	if next.Theme == ThemeDark {
		next.Theme = ThemeLight
	} else {
		next.Theme = ThemeDark
	}
	if err := s.Save(ctx, next); err != nil {
		return s.current.Theme, err
	}
	return next.Theme, nil
}
