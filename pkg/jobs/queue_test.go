package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRetriesTransientFailures(t *testing.T) {
	var calls int32
	done := make(chan struct{})
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}, QueueConfig{MaxRetries: 2, RetryDelay: 10 * time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-1", Type: "bulk"}))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not retried")
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestQueueDropsPermanentFailures(t *testing.T) {
	var calls int32
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		atomic.AddInt32(&calls, 1)
		return Permanent(errors.New("bad payload"))
	}, QueueConfig{MaxRetries: 3, RetryDelay: 5 * time.Millisecond})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	time.Sleep(100 * time.Millisecond)
	q.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestQueueRejectsBeforeStart(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{ID: "x"}))
}

func TestQueueBackoffDoublesUpToCap(t *testing.T) {
	q := NewQueue("backoff", func(context.Context, Job) error { return nil }, QueueConfig{
		RetryDelay:    100 * time.Millisecond,
		MaxRetryDelay: 500 * time.Millisecond,
	})
	assert.Equal(t, 100*time.Millisecond, q.backoff(1))
	assert.Equal(t, 200*time.Millisecond, q.backoff(2))
	assert.Equal(t, 400*time.Millisecond, q.backoff(3))
	assert.Equal(t, 500*time.Millisecond, q.backoff(4))
	assert.Equal(t, 500*time.Millisecond, q.backoff(10))

	defaults := NewQueue("defaults", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Equal(t, time.Second, defaults.backoff(1))
	assert.Equal(t, 30*time.Second, defaults.backoff(9))
}
