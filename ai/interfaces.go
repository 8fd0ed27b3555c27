package ai

import (
	"context"
	"errors"
)

// ErrNoSummary is returned when the model produced no usable text.
var ErrNoSummary = errors.New("no summary returned")

type Summarizer interface {
	// Summarize explains a publication, identified by its title, in simple terms.
	// Returns ErrNoSummary if the model answered without any content.
	// Returns an error if the request fails.
	Summarize(ctx context.Context, title string) (string, error)
}

type Provider interface {
	// Summarizer returns the summarization service.
	// The returned Summarizer is safe for concurrent use.
	Summarizer() Summarizer

	// Model returns the identifier of the model behind the summarizer.
	Model() string

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
