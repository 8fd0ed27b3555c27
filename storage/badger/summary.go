package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/pubcat/core"
	"github.com/poiesic/pubcat/storage"
)

// DefaultTTL is how long a cached summary lives unless configured otherwise.
const DefaultTTL = 24 * time.Hour

// SummaryRepository implements storage.SummaryRepository for BadgerDB.
type SummaryRepository struct {
	backend *Backend
	ttl     time.Duration
}

var _ storage.SummaryRepository = (*SummaryRepository)(nil)

// Option configures a SummaryRepository.
type Option func(*SummaryRepository) error

// WithTTL sets the lifetime of cached entries. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(r *SummaryRepository) error {
		if ttl < 0 {
			return storage.ErrInvalidTTL
		}
		r.ttl = ttl
		return nil
	}
}

// NewSummaryRepository creates a summary cache on top of backend.
// The repository does not own the backend; close the backend separately.
func NewSummaryRepository(backend *Backend, opts ...Option) (storage.SummaryRepository, error) {
	return newSummaryRepository(backend, opts...)
}

func newSummaryRepository(backend *Backend, opts ...Option) (*SummaryRepository, error) {
	r := &SummaryRepository{
		backend: backend,
		ttl:     DefaultTTL,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Close releases resources. SummaryRepository has no resources to release.
func (r *SummaryRepository) Close() error {
	return nil
}

// GetSummary retrieves the cached summary for a publication.
func (r *SummaryRepository) GetSummary(ctx context.Context, id core.ID) (*core.Summary, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var result *core.Summary
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readSummary(tx, makeSummaryKey(id))
		return err
	}, false)
	return result, err
}

// PutSummary stores a summary, replacing any previous entry.
func (r *SummaryRepository) PutSummary(ctx context.Context, summary *core.Summary) error {
	if err := core.ValidateSummary(summary); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		entry := badger.NewEntry(makeSummaryKey(summary.PublicationId), storage.MarshalSummary(summary))
		if r.ttl > 0 {
			entry = entry.WithTTL(r.ttl)
		}
		if err := tx.SetEntry(entry); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteSummary removes the cached summary for a publication.
func (r *SummaryRepository) DeleteSummary(ctx context.Context, id core.ID) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSummaryKey(id)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CountSummaries counts live cached summaries. Expired entries are skipped
// by the iterator.
func (r *SummaryRepository) CountSummaries(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(summaryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			count++
		}
		return nil
	}, false)
	return count, err
}

// readSummary reads a summary from the transaction.
// Returns nil, nil when the key is absent.
func readSummary(tx *badger.Txn, key []byte) (*core.Summary, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var summary *core.Summary
	err = item.Value(func(val []byte) error {
		var err error
		summary, err = storage.UnmarshalSummary(val)
		return err
	})
	return summary, err
}
