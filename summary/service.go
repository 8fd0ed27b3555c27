package summary

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/poiesic/pubcat/ai"
	"github.com/poiesic/pubcat/core"
	"github.com/poiesic/pubcat/storage"
	"golang.org/x/sync/singleflight"
)

// Display strings rendered by Text.
const (
	NoSummaryText     = "No summary available"
	FailedSummaryText = "AI summary failed"
)

const (
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
)

// Service summarizes publications through a cache.
// Safe for concurrent use.
type Service struct {
	summarizer     ai.Summarizer
	repo           storage.SummaryRepository
	model          string
	maxAttempts    int
	retryBaseDelay time.Duration
	group          singleflight.Group
	logger         *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithModel records the model name stored alongside generated summaries.
func WithModel(model string) Option {
	return func(s *Service) error {
		s.model = model
		return nil
	}
}

// WithRetry sets how many times a model call is attempted and the initial
// backoff delay. Defaults are 3 attempts starting at 500ms.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(s *Service) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		s.maxAttempts = maxAttempts
		s.retryBaseDelay = baseDelay
		return nil
	}
}

// NewService creates a summary service backed by summarizer and cached in repo.
func NewService(summarizer ai.Summarizer, repo storage.SummaryRepository, opts ...Option) (*Service, error) {
	if summarizer == nil {
		return nil, ErrSummarizerRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Service{
		summarizer:     summarizer,
		repo:           repo,
		maxAttempts:    defaultMaxAttempts,
		retryBaseDelay: defaultRetryBaseDelay,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "summary-service")
	return s, nil
}

// Summarize returns the summary for pub, generating and caching it on a miss.
// Concurrent calls for the same publication share a single model request.
// Cache failures are logged and do not fail the call.
func (s *Service) Summarize(ctx context.Context, pub core.Publication) (*core.Summary, error) {
	if cached := s.cached(ctx, pub.Id); cached != nil {
		return cached, nil
	}

	v, err, shared := s.group.Do(strconv.FormatUint(uint64(pub.Id), 16), func() (any, error) {
		// Another flight may have filled the cache between the miss and now
		if cached := s.cached(ctx, pub.Id); cached != nil {
			return cached, nil
		}
		return s.generate(ctx, pub)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("shared in-flight summary", "id", pub.Id)
	}

	// Callers own their copy
	out := *v.(*core.Summary)
	return &out, nil
}

// Text returns display text for pub and never fails.
func (s *Service) Text(ctx context.Context, pub core.Publication) string {
	summary, err := s.Summarize(ctx, pub)
	switch {
	case errors.Is(err, ai.ErrNoSummary):
		return NoSummaryText
	case err != nil:
		return FailedSummaryText
	case summary.Text == "":
		return NoSummaryText
	}
	return summary.Text
}

// Forget drops the cached summary for a publication, if any.
func (s *Service) Forget(ctx context.Context, id core.ID) error {
	err := s.repo.DeleteSummary(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Service) cached(ctx context.Context, id core.ID) *core.Summary {
	summary, err := s.repo.GetSummary(ctx, id)
	if err != nil {
		s.logger.Warn("summary cache read failed", "id", id, "err", err)
		return nil
	}
	return summary
}

func (s *Service) generate(ctx context.Context, pub core.Publication) (*core.Summary, error) {
	var (
		text      string
		permanent error
	)
	err := RetryWithBackoff(ctx, func() error {
		var err error
		text, err = s.summarizer.Summarize(ctx, pub.Title)
		if err == nil && text == "" {
			err = ai.ErrNoSummary
		}
		if errors.Is(err, ai.ErrNoSummary) {
			// An empty answer will not improve on retry
			permanent = err
			return nil
		}
		return err
	}, s.maxAttempts, s.retryBaseDelay)
	if err == nil {
		err = permanent
	}
	if err != nil {
		s.logger.Error("summary generation failed", "id", pub.Id, "title", pub.Title, "err", err)
		return nil, err
	}

	summary := &core.Summary{
		PublicationId: pub.Id,
		Title:         pub.Title,
		Text:          text,
		Model:         s.model,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.PutSummary(ctx, summary); err != nil {
		s.logger.Warn("summary cache write failed", "id", pub.Id, "err", err)
	}
	s.logger.Debug("generated summary", "id", pub.Id, "chars", len(text))
	return summary, nil
}
