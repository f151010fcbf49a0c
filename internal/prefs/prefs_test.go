package prefs

import (
	"context"
	"testing"

	"echowall/internal/feed"
	"echowall/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	s := NewStore(kv.NewMemory(), "prefs", Preferences{})

	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, p.Theme)
	assert.Equal(t, feed.SortLatest, p.SortMode)
	assert.Empty(t, p.SearchTerm)
}

func TestLoadDefaultsWhenMalformed(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, "prefs", "not json at all"))

	s := NewStore(mem, "prefs", Preferences{Theme: ThemeDark})
	p, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, p.Theme)
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	s := NewStore(mem, "prefs", Preferences{})
	_, err := s.Load(ctx)
	require.NoError(t, err)

	want := Preferences{Theme: ThemeDark, SortMode: feed.SortMostLiked, SearchTerm: "coffee"}
	require.NoError(t, s.Save(ctx, want))
	assert.Equal(t, want, s.Current())

	reloaded := NewStore(mem, "prefs", Preferences{})
	p, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, p)
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kv.NewMemory(), "prefs", Preferences{})
	_, err := s.Load(ctx)
	require.NoError(t, err)

	theme, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	// Toggling twice returns to the original
	theme, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
	assert.Equal(t, ThemeLight, s.Current().Theme)
}

func TestLoadSanitizesUnknownTheme(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, "prefs", `{"theme":"sepia","sortMode":"latest"}`))

	s := NewStore(mem, "prefs", Preferences{})
	p, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, p.Theme)
}
