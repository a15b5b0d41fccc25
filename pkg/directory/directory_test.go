package directory_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlecheck/pkg/directory"
)

func TestDirectory_Exists(t *testing.T) {
	dir := directory.New("myUsername", "admin")

	t.Run("finds registered username", func(t *testing.T) {
		assert.True(t, dir.Exists("myUsername"))
		assert.True(t, dir.Exists("admin"))
	})

	t.Run("is case sensitive", func(t *testing.T) {
		assert.False(t, dir.Exists("myusername"))
		assert.False(t, dir.Exists("ADMIN"))
	})

	t.Run("does not normalize whitespace", func(t *testing.T) {
		assert.False(t, dir.Exists(" admin"))
	})

	t.Run("unknown username", func(t *testing.T) {
		assert.False(t, dir.Exists("someoneElse"))
	})

	t.Run("lookups do not register usernames", func(t *testing.T) {
		before := dir.Len()
		dir.Exists("brandNewUser")
		assert.Equal(t, before, dir.Len())
		assert.False(t, dir.Exists("brandNewUser"))
	})
}

func TestDirectory_Empty(t *testing.T) {
	var nilDir *directory.Directory
	assert.False(t, nilDir.Exists("x"))
	assert.Equal(t, 0, nilDir.Len())

	dir := directory.New()
	assert.False(t, dir.Exists(""))
	assert.Equal(t, 0, dir.Len())
}

func TestDirectory_Duplicates(t *testing.T) {
	dir := directory.New("a", "a", "b")
	assert.Equal(t, 2, dir.Len())
}

func TestDirectory_ConcurrentReads(t *testing.T) {
	dir := directory.New("alpha", "beta")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, dir.Exists("alpha"))
				assert.False(t, dir.Exists("gamma"))
			}
		}()
	}
	wg.Wait()
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("merges all sources", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.txt")
		require.NoError(t, os.WriteFile(path, []byte("fromFile\nshared\n"), 0o600))

		dir, err := directory.Load(ctx,
			directory.Static("fromStatic", "shared"),
			directory.File(path),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, dir.Len())
		assert.True(t, dir.Exists("fromStatic"))
		assert.True(t, dir.Exists("fromFile"))
		assert.True(t, dir.Exists("shared"))
	})

	t.Run("no sources gives empty directory", func(t *testing.T) {
		dir, err := directory.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, dir.Len())
	})

	t.Run("empty file path is skipped", func(t *testing.T) {
		dir, err := directory.Load(ctx, directory.File(""))
		require.NoError(t, err)
		assert.Equal(t, 0, dir.Len())
	})

	t.Run("wraps source errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := directory.Load(ctx, directory.SourceFunc{
			SourceName: "broken",
			Fn:         func(context.Context) ([]string, error) { return nil, boom },
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, directory.ErrFailedToLoadSource))
		assert.True(t, errors.Is(err, boom))
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("rejects nil source", func(t *testing.T) {
		_, err := directory.Load(ctx, nil)
		assert.ErrorIs(t, err, directory.ErrNilSource)
	})

	t.Run("static source is isolated from caller slice", func(t *testing.T) {
		names := []string{"one"}
		src := directory.Static(names...)
		names[0] = "changed"

		got, err := src.Usernames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"one"}, got)
	})
}
