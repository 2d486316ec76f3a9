package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageBackend(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		testStorageBackend(t, NewMemBackend())
	})

	t.Run("File", func(t *testing.T) {
		backend, err := OpenFileBackend(filepath.Join(t.TempDir(), "world.json"))
		require.NoError(t, err)
		testStorageBackend(t, backend)
	})
}

func testStorageBackend(t *testing.T, backend Backend) {
	ctx := context.Background()
	db := NewDB(backend)

	t.Run("GetDoesNotExist", func(t *testing.T) {
		var got string
		err := db.Get(ctx, "does/not/exist", &got)
		assert.ErrorIs(t, err, ErrNotExist)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		defer func() {
			assert.NoError(t, db.Clear(ctx, "clear"))
		}()

		require.NoError(t, db.Set(ctx, "foo", "bar", "set foo"))

		var got string
		require.NoError(t, db.Get(ctx, "foo", &got))
		assert.Equal(t, "bar", got)

		require.NoError(t, db.Set(ctx, "foo", "baz", "set foo again"))
		require.NoError(t, db.Get(ctx, "foo", &got))
		assert.Equal(t, "baz", got)
	})

	t.Run("DeleteAndKeys", func(t *testing.T) {
		defer func() {
			assert.NoError(t, db.Clear(ctx, "clear"))
		}()

		require.NoError(t, db.Set(ctx, "things/1", "one", "set"))
		require.NoError(t, db.Set(ctx, "things/2", "two", "set"))
		require.NoError(t, db.Set(ctx, "values/time", "3", "set"))

		keys, err := db.Keys(ctx, "things")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, keys)

		all, err := db.Keys(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"things/1", "things/2", "values/time"}, all)

		require.NoError(t, db.Delete(ctx, "things/1", "delete"))
		keys, err = db.Keys(ctx, "things")
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, keys)

		assert.NoError(t, db.Delete(ctx, "things/1", "delete again"),
			"deleting a missing key is not an error")
	})

	t.Run("KeysDoesNotExist", func(t *testing.T) {
		keys, err := db.Keys(ctx, "does/not/exist")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("BatchUpdate", func(t *testing.T) {
		defer func() {
			assert.NoError(t, db.Clear(ctx, "clear"))
		}()

		require.NoError(t, db.Set(ctx, "gone", 1, "set"))
		require.NoError(t, db.Update(ctx, UpdateRequest{
			Sets: []SetRequest{
				{Key: "a", Value: 1},
				{Key: "b", Value: 2},
			},
			Deletes: []string{"gone"},
			Message: "batch",
		}))

		var n int
		require.NoError(t, db.Get(ctx, "a", &n))
		assert.Equal(t, 1, n)
		require.NoError(t, db.Get(ctx, "b", &n))
		assert.Equal(t, 2, n)
		assert.ErrorIs(t, db.Get(ctx, "gone", &n), ErrNotExist)
	})
}

func TestFileBackendPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "world.json")

	backend, err := OpenFileBackend(path)
	require.NoError(t, err)
	require.NoError(t, NewDB(backend).Set(ctx, "things/nott", "goblin", "save"))

	reopened, err := OpenFileBackend(path)
	require.NoError(t, err)

	var got string
	require.NoError(t, NewDB(reopened).Get(ctx, "things/nott", &got))
	assert.Equal(t, "goblin", got)
}
