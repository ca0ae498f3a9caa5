package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"fulfilment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlusher struct {
	mu      sync.Mutex
	pending int
	flushes int
}

func (f *fakeFlusher) Flush(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	f.pending = 0
	return nil
}

func (f *fakeFlusher) PendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(&fakeFlusher{}, discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestLegacySyncJob_StartAndStop(t *testing.T) {
	flusher := &fakeFlusher{pending: 1}
	job := jobs.NewLegacySyncJob(flusher, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()

	// The schedule fires every 30 seconds; within this test window the queue
	// stays untouched.
	assert.Equal(t, 1, flusher.PendingCount())
}
