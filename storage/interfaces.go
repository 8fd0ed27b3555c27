package storage

import (
	"context"

	"github.com/poiesic/pubcat/core"
)

// SummaryRepository caches generated publication summaries.
// Implementations must be thread-safe and support concurrent access.
type SummaryRepository interface {
	// GetSummary returns the cached summary for a publication.
	// Returns nil, nil when no summary is cached or the entry expired.
	GetSummary(ctx context.Context, id core.ID) (*core.Summary, error)

	// PutSummary stores a summary keyed by its PublicationId,
	// replacing any previous entry.
	PutSummary(ctx context.Context, summary *core.Summary) error

	// DeleteSummary removes the cached summary for a publication.
	// Returns ErrNotFound if nothing is cached.
	DeleteSummary(ctx context.Context, id core.ID) error

	// CountSummaries returns the number of live cached summaries.
	CountSummaries(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
