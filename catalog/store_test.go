package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/poiesic/pubcat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Snapshot(t *testing.T) {
	store := NewStore()

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Len())
	assert.False(t, store.Loaded())

	c := core.NewCatalog([]core.Publication{core.NewPublication("A", "#a")})
	store.Publish(c)
	assert.Same(t, c, store.Snapshot())
	assert.True(t, store.Loaded())

	store.Publish(nil)
	require.NotNil(t, store.Snapshot())
	assert.Equal(t, 0, store.Snapshot().Len())
}

func TestStore_Refresh(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	good := filepath.Join(dir, "pubs.csv")
	require.NoError(t, os.WriteFile(good, []byte("Title,Link\nA,#a\nB,#b\n"), 0644))
	missing := filepath.Join(dir, "missing.csv")

	t.Run("failed first load publishes empty catalog", func(t *testing.T) {
		store := NewStore()
		err := store.Refresh(ctx, missing)
		assert.ErrorIs(t, err, ErrLoadFailed)
		assert.True(t, store.Loaded())
		assert.Equal(t, 0, store.Snapshot().Len())
	})

	t.Run("failed reload keeps previous snapshot", func(t *testing.T) {
		store := NewStore()
		require.NoError(t, store.Refresh(ctx, good))
		before := store.Snapshot()
		require.Equal(t, 2, before.Len())

		err := store.Refresh(ctx, missing)
		assert.Error(t, err)
		assert.Same(t, before, store.Snapshot())
	})

	t.Run("successful reload replaces snapshot wholesale", func(t *testing.T) {
		store := NewStore(WithStoreLogger(nil))
		require.NoError(t, store.Refresh(ctx, good))
		first := store.Snapshot()

		require.NoError(t, os.WriteFile(good, []byte("Title,Link\nC,#c\n"), 0644))
		require.NoError(t, store.Refresh(ctx, good))

		assert.Equal(t, 2, first.Len(), "old snapshot must not change")
		assert.Equal(t, []string{"C"}, titles(store.Snapshot()))
	})
}

func TestStore_ConcurrentReaders(t *testing.T) {
	store := NewStore()
	a := core.NewCatalog([]core.Publication{core.NewPublication("A", "#a")})
	b := core.NewCatalog([]core.Publication{core.NewPublication("B", "#b"), core.NewPublication("C", "#c")})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if (i+j)%2 == 0 {
					store.Publish(a)
				} else {
					store.Publish(b)
				}
				n := store.Snapshot().Len()
				if n != 1 && n != 2 {
					t.Errorf("torn snapshot with %d publications", n)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
