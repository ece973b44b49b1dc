package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrawlhq/scrawl/pkg/adapters/fs"
)

func TestInitialize(t *testing.T) {
	t.Run("CreatesMissingDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "store")
		store := fs.NewStore(fs.Config{Dir: dir, AutoInit: true})

		require.NoError(t, store.Initialize(context.Background()))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExistFailsOnMissing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "absent")
		store := fs.NewStore(fs.Config{Dir: dir, MustExist: true})

		err := store.Initialize(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("NoAutoInitFailsOnMissing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "absent")
		store := fs.NewStore(fs.Config{Dir: dir})

		err := store.Initialize(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auto-init")
	})

	t.Run("ExistingDirectoryIsFine", func(t *testing.T) {
		dir := t.TempDir()
		store := fs.NewStore(fs.Config{Dir: dir, MustExist: true})

		assert.NoError(t, store.Initialize(context.Background()))
	})

	t.Run("FileAtPathFails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notadir")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		store := fs.NewStore(fs.Config{Dir: path, AutoInit: true})

		err := store.Initialize(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("EmptyDirFails", func(t *testing.T) {
		store := fs.NewStore(fs.Config{})
		assert.Error(t, store.Initialize(context.Background()))
	})
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) *fs.Store {
		t.Helper()
		store := fs.NewStore(fs.Config{Dir: t.TempDir(), AutoInit: true})
		require.NoError(t, store.Initialize(ctx))
		return store
	}

	t.Run("RoundTrip", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "notes", `[{"id":"a"}]`))

		value, ok, err := store.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"a"}]`, value)
	})

	t.Run("MissingKey", func(t *testing.T) {
		store := newStore(t)

		value, ok, err := store.Get(ctx, "never-written")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("Overwrite", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "notes", "first"))
		require.NoError(t, store.Set(ctx, "notes", "second"))

		value, ok, err := store.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", value)
	})

	t.Run("ValuesLandAsJSONFiles", func(t *testing.T) {
		dir := t.TempDir()
		store := fs.NewStore(fs.Config{Dir: dir, AutoInit: true})
		require.NoError(t, store.Initialize(ctx))

		require.NoError(t, store.Set(ctx, "scrawl-notes", "[]"))

		data, err := os.ReadFile(filepath.Join(dir, "scrawl-notes.json"))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("RejectsEmptyKey", func(t *testing.T) {
		store := newStore(t)

		assert.Error(t, store.Set(ctx, "", "value"))
		_, _, err := store.Get(ctx, "")
		assert.Error(t, err)
	})

	t.Run("RejectsPathSeparators", func(t *testing.T) {
		store := newStore(t)

		assert.Error(t, store.Set(ctx, "../escape", "value"))
		assert.Error(t, store.Set(ctx, `nested\key`, "value"))
	})
}
