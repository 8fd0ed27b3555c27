package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/pubcat/core"
)

// Store holds the catalog snapshot currently visible to readers.
// Safe for concurrent use.
type Store struct {
	current   atomic.Pointer[core.Catalog]
	published atomic.Bool
	logger    *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets a custom logger.
// Default is slog.Default().
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates a store holding an empty catalog.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "catalog-store")
	s.current.Store(core.EmptyCatalog())
	return s
}

// Snapshot returns the current catalog. Never nil.
func (s *Store) Snapshot() *core.Catalog {
	return s.current.Load()
}

// Publish replaces the current snapshot. A nil catalog publishes an empty one.
func (s *Store) Publish(c *core.Catalog) {
	if c == nil {
		c = core.EmptyCatalog()
	}
	s.current.Store(c)
	s.published.Store(true)
}

// Loaded reports whether a catalog has ever been published.
func (s *Store) Loaded() bool {
	return s.published.Load()
}

// Refresh loads source and publishes the result.
//
// On failure the previous snapshot stays in place. If nothing was ever
// published, an empty catalog is published so that a failed first load looks
// exactly like an empty one to readers. The load error is still returned.
func (s *Store) Refresh(ctx context.Context, source string) error {
	c, err := LoadSource(ctx, source)
	if err != nil {
		s.logger.Error("error loading catalog", "source", source, "err", err)
		if !s.Loaded() {
			s.Publish(core.EmptyCatalog())
		}
		return err
	}
	s.Publish(c)
	s.logger.Info("catalog loaded", "source", source, "publications", c.Len())
	return nil
}
