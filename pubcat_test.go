package pubcat

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/pubcat/ai/mock"
	"github.com/poiesic/pubcat/catalog"
	"github.com/poiesic/pubcat/core"
	"github.com/poiesic/pubcat/storage"
	"github.com/poiesic/pubcat/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Title,Link
Mice in Bion-M 1 Space Mission,https://example.org/1
Microgravity induces pelvic bone loss,https://example.org/2
Stem Cell Health in Space,https://example.org/3
Mice Muscle Atrophy in Orbit,https://example.org/4
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "publications.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func newTestLibrary(t *testing.T, opts ...Option) (*Library, *mock.MockSummarizer) {
	t.Helper()
	summarizer := mock.NewMockSummarizer()
	opts = append([]Option{WithProvider(mock.NewMockProviderWithSummarizer(summarizer))}, opts...)
	lib, err := NewLibrary(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib, summarizer
}

func titles(pubs []core.Publication) []string {
	out := make([]string, len(pubs))
	for i, p := range pubs {
		out[i] = p.Title
	}
	return out
}

func TestNewLibrary_Defaults(t *testing.T) {
	lib, err := NewLibrary()
	require.NoError(t, err)
	defer lib.Close()

	assert.Equal(t, 0, lib.Catalog().Len())
	assert.Empty(t, lib.Suggest("mice"))
	assert.Empty(t, lib.Filter(""))
}

func TestNewLibrary_InvalidOptions(t *testing.T) {
	_, err := NewLibrary(WithSummaryTTL(-time.Minute))
	assert.ErrorIs(t, err, storage.ErrInvalidTTL)

	path := filepath.Join(t.TempDir(), "not_a_dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	_, err = NewLibrary(WithCacheDir(path), WithProvider(mock.NewMockProvider()))
	assert.Error(t, err)
}

func TestLibrary_LoadAndQuery(t *testing.T) {
	lib, _ := newTestLibrary(t)
	require.NoError(t, lib.Load(context.Background(), writeCatalog(t, testCSV)))

	assert.Equal(t, 4, lib.Catalog().Len())
	assert.Equal(t,
		[]string{"Mice in Bion-M 1 Space Mission", "Mice Muscle Atrophy in Orbit"},
		titles(lib.Suggest("mice")))
	assert.Equal(t,
		[]string{"Mice in Bion-M 1 Space Mission", "Microgravity induces pelvic bone loss", "Mice Muscle Atrophy in Orbit"},
		titles(lib.Filter("mic")))
	assert.Len(t, lib.Filter(""), 4)

	results := lib.Search("SPACE")
	assert.Equal(t, 4, results.CatalogSize)
	assert.Equal(t, titles(results.Matches), titles(results.Suggestions))
	assert.Len(t, results.Matches, 2)
}

func TestLibrary_LoadFailureKeepsPrevious(t *testing.T) {
	lib, _ := newTestLibrary(t)
	ctx := context.Background()

	err := lib.Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, catalog.ErrLoadFailed)
	assert.Equal(t, 0, lib.Catalog().Len())

	require.NoError(t, lib.Load(ctx, writeCatalog(t, testCSV)))
	err = lib.Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	assert.Equal(t, 4, lib.Catalog().Len())
}

func TestLibrary_Graph(t *testing.T) {
	lib, _ := newTestLibrary(t)
	require.NoError(t, lib.Load(context.Background(), writeCatalog(t, testCSV)))

	g := lib.Graph()
	require.Len(t, g.Nodes, 4)
	require.Len(t, g.Links, 4)
	assert.Equal(t, "Mice Muscle Atrophy in Orbit", g.Links[3].Source)
	assert.Equal(t, "Mice in Bion-M 1 Space Mission", g.Links[3].Target)
}

func TestLibrary_Summaries(t *testing.T) {
	lib, summarizer := newTestLibrary(t)
	ctx := context.Background()
	require.NoError(t, lib.Load(ctx, writeCatalog(t, testCSV)))

	pub := lib.Suggest("stem")[0]
	s, err := lib.Summarize(ctx, pub)
	require.NoError(t, err)
	assert.Equal(t, mock.Canned(pub.Title), s.Text)
	assert.Equal(t, mock.MockModel, s.Model)

	assert.Equal(t, mock.Canned(pub.Title), lib.SummaryText(ctx, pub))
	assert.Equal(t, 1, summarizer.CallCount())
}

func TestLibrary_WarmSummaries(t *testing.T) {
	lib, summarizer := newTestLibrary(t)
	ctx := context.Background()
	require.NoError(t, lib.Load(ctx, writeCatalog(t, testCSV)))

	stats, err := lib.WarmSummaries(ctx, lib.Filter(""), summary.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Succeeded)
	assert.Equal(t, 4, summarizer.CallCount())

	for _, pub := range lib.Filter("") {
		lib.SummaryText(ctx, pub)
	}
	assert.Equal(t, 4, summarizer.CallCount(), "warmed summaries come from the cache")

	_, err = lib.WarmSummaries(ctx, nil, summary.WithWorkers(0))
	assert.ErrorIs(t, err, summary.ErrInvalidWorkers)
}

func TestLibrary_PersistentCache(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	pub := core.NewPublication("Persistent Study", "https://example.org/p")

	first := mock.NewMockSummarizer()
	lib, err := NewLibrary(WithCacheDir(dir), WithProvider(mock.NewMockProviderWithSummarizer(first)))
	require.NoError(t, err)
	_, err = lib.Summarize(ctx, pub)
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	second := mock.NewMockSummarizer()
	lib, err = NewLibrary(WithCacheDir(dir), WithProvider(mock.NewMockProviderWithSummarizer(second)))
	require.NoError(t, err)
	defer lib.Close()

	s, err := lib.Summarize(ctx, pub)
	require.NoError(t, err)
	assert.Equal(t, mock.Canned(pub.Title), s.Text)
	assert.Equal(t, 0, second.CallCount())
}

func TestLibrary_Watch(t *testing.T) {
	lib, _ := newTestLibrary(t)
	path := writeCatalog(t, testCSV)
	require.NoError(t, lib.Load(context.Background(), path))

	require.NoError(t, lib.Watch(path, catalog.WithDebounce(20*time.Millisecond)))

	require.NoError(t, os.WriteFile(path, []byte("Title,Link\nOnly One,#\n"), 0644))
	assert.Eventually(t, func() bool {
		return lib.Catalog().Len() == 1
	}, 5*time.Second, 20*time.Millisecond)

	err := lib.Watch("https://example.org/catalog.csv")
	assert.ErrorIs(t, err, catalog.ErrUnsupportedSource)
}

func TestLibrary_CloseProvider(t *testing.T) {
	provider := mock.NewMockProvider()
	lib, err := NewLibrary(WithProvider(provider))
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	assert.True(t, provider.(*mock.MockProvider).Closed())
}
