package search

import (
	"log/slog"

	"github.com/poiesic/pubcat/core"
)

// SnapshotSource supplies the catalog an engine searches.
// Snapshot must not return a catalog that is later modified.
type SnapshotSource interface {
	Snapshot() *core.Catalog
}

// Results holds both views of one query, computed against the same snapshot.
type Results struct {
	Query       string
	Suggestions []core.Publication
	Matches     []core.Publication
	CatalogSize int
}

// Engine answers queries against the current catalog snapshot.
// Safe for concurrent use.
type Engine struct {
	source         SnapshotSource
	maxSuggestions int
	logger         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMaxSuggestions overrides the suggestion cap.
// Default is MaxSuggestions.
func WithMaxSuggestions(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return ErrInvalidMaxSuggestions
		}
		e.maxSuggestions = n
		return nil
	}
}

// NewEngine creates an engine reading from source.
func NewEngine(source SnapshotSource, opts ...Option) (*Engine, error) {
	if source == nil {
		return nil, ErrSnapshotSourceRequired
	}

	e := &Engine{
		source:         source,
		maxSuggestions: MaxSuggestions,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Suggest returns the suggestion list for query.
func (e *Engine) Suggest(query string) []core.Publication {
	return suggest(e.source.Snapshot(), query, e.maxSuggestions)
}

// Filter returns the full filtered list for query.
func (e *Engine) Filter(query string) []core.Publication {
	return Filter(e.source.Snapshot(), query)
}

// Search computes suggestions and matches from a single snapshot.
func (e *Engine) Search(query string) Results {
	snapshot := e.source.Snapshot()
	matches := Filter(snapshot, query)

	// Suggestions are the leading matches, so take them from the filtered list.
	suggestions := []core.Publication{}
	if !IsBlank(query) {
		n := min(len(matches), e.maxSuggestions)
		suggestions = append(suggestions, matches[:n]...)
	}

	e.logger.Debug("search",
		"query", query,
		"catalog", snapshot.Len(),
		"matches", len(matches),
		"suggestions", len(suggestions))

	return Results{
		Query:       query,
		Suggestions: suggestions,
		Matches:     matches,
		CatalogSize: snapshot.Len(),
	}
}
