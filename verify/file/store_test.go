package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_IsVerified(t *testing.T) {
	t.Parallel()

	t.Run("missing file reads unverified", func(t *testing.T) {
		t.Parallel()

		s := NewStore(filepath.Join(t.TempDir(), "users.json"))

		verified, err := s.IsVerified(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("corrupt file reads unverified", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "users.json")

		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

		s := NewStore(path)

		verified, err := s.IsVerified(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, verified)
	})
}

func TestStore_SetVerified(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var (
			ctx = context.Background()
			s   = NewStore(filepath.Join(t.TempDir(), "users.json"))
		)

		require.NoError(t, s.SetVerified(ctx, 42, true))

		verified, err := s.IsVerified(ctx, 42)

		require.NoError(t, err)
		assert.True(t, verified)

		// Other users remain untouched
		verified, err = s.IsVerified(ctx, 43)

		require.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("idempotent set", func(t *testing.T) {
		t.Parallel()

		var (
			ctx = context.Background()
			s   = NewStore(filepath.Join(t.TempDir(), "users.json"))
		)

		require.NoError(t, s.SetVerified(ctx, 42, true))
		require.NoError(t, s.SetVerified(ctx, 42, true))

		verified, err := s.IsVerified(ctx, 42)

		require.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("revoke verification", func(t *testing.T) {
		t.Parallel()

		var (
			ctx = context.Background()
			s   = NewStore(filepath.Join(t.TempDir(), "users.json"))
		)

		require.NoError(t, s.SetVerified(ctx, 42, true))
		require.NoError(t, s.SetVerified(ctx, 42, false))

		verified, err := s.IsVerified(ctx, 42)

		require.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("persisted across store instances", func(t *testing.T) {
		t.Parallel()

		var (
			ctx  = context.Background()
			path = filepath.Join(t.TempDir(), "users.json")
		)

		require.NoError(t, NewStore(path).SetVerified(ctx, 42, true))

		verified, err := NewStore(path).IsVerified(ctx, 42)

		require.NoError(t, err)
		assert.True(t, verified)
	})
}
