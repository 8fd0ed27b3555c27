package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewWatcher_Validation(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		_, err := NewWatcher(nil, "pubs.csv")
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("remote source", func(t *testing.T) {
		_, err := NewWatcher(NewStore(), "https://example.org/pubs.csv")
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "pubs.csv")
	require.NoError(t, os.WriteFile(path, []byte("Title,Link\nA,#a\n"), 0644))

	store := NewStore()
	require.NoError(t, store.Refresh(t.Context(), path))
	require.Equal(t, 1, store.Snapshot().Len())

	reloads := make(chan error, 16)
	w, err := NewWatcher(store, path,
		WithDebounce(20*time.Millisecond),
		WithReloadHook(func(err error) { reloads <- err }),
	)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("Title,Link\nA,#a\nB,#b\nC,#c\n"), 0644))

	select {
	case err := <-reloads:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload")
	}
	assert.Eventually(t, func() bool {
		return store.Snapshot().Len() == 3
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "close is idempotent")
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "pubs.csv")
	require.NoError(t, os.WriteFile(path, []byte("Title,Link\nA,#a\n"), 0644))

	store := NewStore()
	reloads := make(chan error, 16)
	w, err := NewWatcher(store, path,
		WithDebounce(10*time.Millisecond),
		WithReloadHook(func(err error) { reloads <- err }),
	)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0644))

	select {
	case <-reloads:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
	assert.False(t, store.Loaded())
}
