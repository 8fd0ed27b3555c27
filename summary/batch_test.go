package summary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/pubcat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePubs(n int) []core.Publication {
	pubs := make([]core.Publication, n)
	for i := range pubs {
		pubs[i] = core.NewPublication(fmt.Sprintf("Study %02d", i), fmt.Sprintf("https://example.org/%d", i))
	}
	return pubs
}

func TestNewBatch_Validation(t *testing.T) {
	service, _, _ := setupService(t)

	_, err := NewBatch(nil)
	assert.ErrorIs(t, err, ErrServiceRequired)

	_, err = NewBatch(service, WithWorkers(0))
	assert.ErrorIs(t, err, ErrInvalidWorkers)

	_, err = NewBatch(service, WithRate(-1))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestBatch_Run(t *testing.T) {
	service, summarizer, repo := setupService(t)
	pubs := makePubs(20)
	// Duplicates are summarized once
	pubs = append(pubs, pubs[0], pubs[5])

	batch, err := NewBatch(service, WithWorkers(4))
	require.NoError(t, err)

	stats, err := batch.Run(context.Background(), pubs)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Total)
	assert.Equal(t, 20, stats.Succeeded)
	assert.Zero(t, stats.Failed)
	assert.Zero(t, stats.Skipped())
	assert.Equal(t, 20, summarizer.CallCount())

	count, err := repo.CountSummaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, count)

	// A second run is served from the cache
	stats, err = batch.Run(context.Background(), pubs)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Succeeded)
	assert.Equal(t, 20, summarizer.CallCount())
}

func TestBatch_RunEmpty(t *testing.T) {
	service, _, _ := setupService(t)
	batch, err := NewBatch(service)
	require.NoError(t, err)

	stats, err := batch.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, BatchStats{}, stats)
}

func TestBatch_CountsFailures(t *testing.T) {
	service, summarizer, _ := setupService(t, WithRetry(1, time.Millisecond))
	summarizer.SummarizeFunc = func(ctx context.Context, title string) (string, error) {
		if strings.HasSuffix(title, "3") {
			return "", errors.New("model overloaded")
		}
		return "ok", nil
	}

	batch, err := NewBatch(service, WithWorkers(3))
	require.NoError(t, err)

	stats, err := batch.Run(context.Background(), makePubs(20))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Failed) // Study 03, Study 13
	assert.Equal(t, 18, stats.Succeeded)
}

func TestBatch_Progress(t *testing.T) {
	service, _, _ := setupService(t)
	var buf bytes.Buffer

	batch, err := NewBatch(service, WithWorkers(2), WithProgress(&buf, 5))
	require.NoError(t, err)

	_, err = batch.Run(context.Background(), makePubs(10))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Progress:")
	assert.Contains(t, output, "10/10")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

func TestBatch_RateLimit(t *testing.T) {
	service, _, _ := setupService(t)

	batch, err := NewBatch(service, WithWorkers(5), WithRate(20))
	require.NoError(t, err)

	start := time.Now()
	stats, err := batch.Run(context.Background(), makePubs(5))
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Succeeded)
	// Burst of one: four waits of 50ms after the first request
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestBatch_Cancelled(t *testing.T) {
	service, summarizer, _ := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := NewBatch(service, WithWorkers(2))
	require.NoError(t, err)

	stats, err := batch.Run(ctx, makePubs(10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 10, stats.Skipped())
	assert.Zero(t, summarizer.CallCount())
}

func TestDedupe(t *testing.T) {
	pubs := makePubs(3)
	out := dedupe([]core.Publication{pubs[1], pubs[0], pubs[1], pubs[2], pubs[0]})
	assert.Equal(t, []core.Publication{pubs[1], pubs[0], pubs[2]}, out)
}
