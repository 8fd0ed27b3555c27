package summary

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/pubcat/core"
	"golang.org/x/time/rate"
)

// BatchStats reports the outcome of a Batch run.
type BatchStats struct {
	Total     int // Distinct publications requested
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// Skipped is the number of publications never attempted, which is non-zero
// only when the run was cancelled.
func (s BatchStats) Skipped() int {
	return s.Total - s.Succeeded - s.Failed
}

// Batch warms the summary cache for many publications.
type Batch struct {
	service        *Service
	workers        int
	limit          rate.Limit
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// BatchOption configures a Batch.
type BatchOption func(*Batch) error

// WithWorkers sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) error {
		if n < 1 {
			return ErrInvalidWorkers
		}
		b.workers = n
		return nil
	}
}

// WithRate caps model requests per second across all workers.
// Zero means unlimited, which is the default.
func WithRate(perSecond float64) BatchOption {
	return func(b *Batch) error {
		if perSecond < 0 {
			return ErrInvalidRate
		}
		if perSecond == 0 {
			b.limit = rate.Inf
		} else {
			b.limit = rate.Limit(perSecond)
		}
		return nil
	}
}

// WithProgress reports progress to w every interval publications.
func WithProgress(w io.Writer, interval int) BatchOption {
	return func(b *Batch) error {
		b.progress = w
		b.reportInterval = interval
		return nil
	}
}

// WithBatchLogger sets a custom logger.
// Default is slog.Default().
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBatch creates a cache warmer driving service.
func NewBatch(service *Service, opts ...BatchOption) (*Batch, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}

	b := &Batch{
		service: service,
		workers: max(runtime.NumCPU()/2, 1),
		limit:   rate.Inf,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.logger = b.logger.With("component", "summary-batch")
	return b, nil
}

// Run summarizes every distinct publication in pubs, storing results in
// the cache. Individual failures are counted, not returned. The returned
// error is ctx.Err() when the run was cut short by cancellation.
func (b *Batch) Run(ctx context.Context, pubs []core.Publication) (BatchStats, error) {
	pending := dedupe(pubs)
	stats := BatchStats{Total: len(pending)}
	if len(pending) == 0 {
		return stats, nil
	}

	pool, err := ants.NewPool(b.workers)
	if err != nil {
		return stats, err
	}
	defer pool.Release()

	limiter := rate.NewLimiter(b.limit, 1)

	var tracker *ProgressTracker
	if b.progress != nil {
		tracker = NewProgressTracker(b.progress, len(pending), b.reportInterval)
		tracker.Start()
	}

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		failed    atomic.Int64
	)
	start := time.Now()

	b.logger.Info("warming summaries", "publications", len(pending), "workers", b.workers)
	for _, pub := range pending {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := limiter.Wait(ctx); err != nil {
				// Cancelled while queued; the publication was never attempted
				return
			}
			if _, err := b.service.Summarize(ctx, pub); err != nil {
				failed.Add(1)
				if tracker != nil {
					tracker.Increment(1, 1)
				}
				return
			}
			succeeded.Add(1)
			if tracker != nil {
				tracker.Increment(1, 0)
			}
		})
		if err != nil {
			wg.Done()
			b.logger.Error("failed to submit summary task", "id", pub.Id, "err", err)
			failed.Add(1)
		}
	}
	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}

	stats.Succeeded = int(succeeded.Load())
	stats.Failed = int(failed.Load())
	stats.Elapsed = time.Since(start)
	b.logger.Info("summary warming finished",
		"succeeded", stats.Succeeded, "failed", stats.Failed, "skipped", stats.Skipped(), "elapsed", stats.Elapsed)

	return stats, ctx.Err()
}

// dedupe keeps the first occurrence of each publication ID, in order.
func dedupe(pubs []core.Publication) []core.Publication {
	seen := make(map[core.ID]struct{}, len(pubs))
	out := make([]core.Publication, 0, len(pubs))
	for _, p := range pubs {
		if _, ok := seen[p.Id]; ok {
			continue
		}
		seen[p.Id] = struct{}{}
		out = append(out, p)
	}
	return out
}
