package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns one instance of every Store adapter, ready for use.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	redisStore, err := NewRedis(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisStore.Close() })

	sqliteStore, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"redis":  redisStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// Missing key is ok=false, not an error
			_, ok, err := s.Get(ctx, "absent")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "posts", `[{"id":"a"}]`))
			v, ok, err := s.Get(ctx, "posts")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"id":"a"}]`, v)

			// Overwrite semantics
			require.NoError(t, s.Set(ctx, "posts", `[]`))
			v, ok, err = s.Get(ctx, "posts")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[]`, v)
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "one", "1"))
			require.NoError(t, s.Set(ctx, "two", "2"))

			v, ok, err := s.Get(ctx, "one")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "1", v)
		})
	}
}

func TestNewRedisInvalidURL(t *testing.T) {
	_, err := NewRedis("redis://[invalid")
	assert.Error(t, err)
}

func TestNewRedisAcceptsURL(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedis("redis://" + mr.Addr())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", "v"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "echowall.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "posts", `[{"id":"a"}]`))
	require.NoError(t, s.Close())

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "posts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}
