package search

import (
	"log/slog"
	"testing"

	"github.com/poiesic/pubcat/catalog"
	"github.com/poiesic/pubcat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	store := catalog.NewStore()

	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(store)
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("with custom logger", func(t *testing.T) {
		engine, err := NewEngine(store, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		engine, err := NewEngine(store, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, engine.logger)
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewEngine(nil)
		assert.Equal(t, ErrSnapshotSourceRequired, err)
	})

	t.Run("invalid suggestion cap", func(t *testing.T) {
		_, err := NewEngine(store, WithMaxSuggestions(0))
		assert.Equal(t, ErrInvalidMaxSuggestions, err)
	})
}

func TestEngine_EmptyBeforeLoad(t *testing.T) {
	engine, err := NewEngine(catalog.NewStore())
	require.NoError(t, err)

	assert.Empty(t, engine.Suggest("mars"))
	assert.Empty(t, engine.Filter(""))

	results := engine.Search("mars")
	assert.Empty(t, results.Suggestions)
	assert.Empty(t, results.Matches)
	assert.Equal(t, 0, results.CatalogSize)
}

func TestEngine_FollowsPublishedSnapshot(t *testing.T) {
	store := catalog.NewStore()
	engine, err := NewEngine(store)
	require.NoError(t, err)

	store.Publish(catalogOf("Mars Rover Mission", "Deep Space Radiation", "Mars Soil Analysis"))
	assert.Equal(t, []string{"Mars Rover Mission", "Mars Soil Analysis"}, titlesOf(engine.Suggest("mars")))

	store.Publish(catalogOf("Lunar Regolith", "Mars Analog Habitat"))
	assert.Equal(t, []string{"Mars Analog Habitat"}, titlesOf(engine.Filter("MARS")))
}

func TestEngine_Search(t *testing.T) {
	store := catalog.NewStore()
	store.Publish(catalogOf("Cell 1", "Cell 2", "Cell 3", "Tissue", "Cell 4"))

	engine, err := NewEngine(store, WithMaxSuggestions(2))
	require.NoError(t, err)

	t.Run("both views agree", func(t *testing.T) {
		results := engine.Search("cell")
		assert.Equal(t, "cell", results.Query)
		assert.Equal(t, 5, results.CatalogSize)
		assert.Equal(t, []string{"Cell 1", "Cell 2"}, titlesOf(results.Suggestions))
		assert.Equal(t, []string{"Cell 1", "Cell 2", "Cell 3", "Cell 4"}, titlesOf(results.Matches))
		assert.Equal(t, engine.Suggest("cell"), results.Suggestions)
	})

	t.Run("blank query", func(t *testing.T) {
		results := engine.Search("")
		assert.Empty(t, results.Suggestions)
		assert.Len(t, results.Matches, 5)
	})

	t.Run("suggestions do not alias matches", func(t *testing.T) {
		results := engine.Search("cell")
		results.Suggestions[0] = core.Publication{Title: "changed"}
		assert.Equal(t, "Cell 1", results.Matches[0].Title)
	})
}
