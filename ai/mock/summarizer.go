package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/poiesic/pubcat/ai"
)

// cannedTemplate is the fixed text produced without a model.
const cannedTemplate = `"%s" summary: This publication provides insights into space biology experiments relevant to Moon and Mars missions, highlighting critical findings and research applications.`

// Canned returns the offline summary for a title.
func Canned(title string) string {
	return fmt.Sprintf(cannedTemplate, title)
}

// MockSummarizer is a test double for ai.Summarizer.
// Safe for concurrent use as long as the function fields are not reassigned
// while calls are in flight.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, returns Canned(title).
	SummarizeFunc func(ctx context.Context, title string) (string, error)

	// Delay simulates model latency. The context is honored while waiting.
	Delay time.Duration

	callCount atomic.Int64
}

var _ ai.Summarizer = (*MockSummarizer)(nil)

func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

func (m *MockSummarizer) Summarize(ctx context.Context, title string) (string, error) {
	m.callCount.Add(1)

	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, title)
	}
	return Canned(title), nil
}

func (m *MockSummarizer) CallCount() int {
	return int(m.callCount.Load())
}

func (m *MockSummarizer) Reset() {
	m.callCount.Store(0)
	m.SummarizeFunc = nil
	m.Delay = 0
}

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	summarizer *MockSummarizer
	closed     atomic.Bool
}

var _ ai.Provider = (*MockProvider)(nil)

// MockModel is the model name reported by MockProvider.
const MockModel = "mock"

func NewMockProvider() ai.Provider {
	return &MockProvider{summarizer: NewMockSummarizer()}
}

func NewMockProviderWithSummarizer(summarizer *MockSummarizer) ai.Provider {
	return &MockProvider{summarizer: summarizer}
}

func (p *MockProvider) Summarizer() ai.Summarizer {
	return p.summarizer
}

func (p *MockProvider) Model() string {
	return MockModel
}

func (p *MockProvider) Close() error {
	p.closed.Store(true)
	return nil
}

func (p *MockProvider) GetMockSummarizer() *MockSummarizer {
	return p.summarizer
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed.Load()
}
