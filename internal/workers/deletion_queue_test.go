package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(count, size int, timeout time.Duration) *DeletionQueue {
	return NewDeletionQueue(config.Workers{Count: count, QueueSize: size, JobTimeout: timeout}, logger.Nop())
}

func TestNewDeletionQueue_Defaults(t *testing.T) {
	q := NewDeletionQueue(config.Workers{}, logger.Nop())

	assert.Equal(t, DefaultWorkerCount, q.count)
	assert.Equal(t, DefaultQueueSize, cap(q.jobs))
	assert.Equal(t, DefaultJobTimeout, q.timeout)
}

func TestDeletionQueue_RunsJobs(t *testing.T) {
	q := newTestQueue(2, 8, time.Second)
	q.Start(context.Background())

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Submit("test_runs", func(context.Context) error {
			ran.Add(1)
			return nil
		}))
	}

	require.NoError(t, q.Stop(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
	assert.Equal(t, float64(5), testutil.ToFloat64(jobsTotal.WithLabelValues("test_runs", resultSuccess)))
}

func TestDeletionQueue_SubmitFullQueue(t *testing.T) {
	q := newTestQueue(1, 1, time.Second)

	// not started: the single slot stays occupied
	require.NoError(t, q.Submit("test_full", func(context.Context) error { return nil }))
	err := q.Submit("test_full", func(context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, float64(1), testutil.ToFloat64(jobsTotal.WithLabelValues("test_full", resultRejected)))
}

func TestDeletionQueue_SubmitAfterStop(t *testing.T) {
	q := newTestQueue(1, 1, time.Second)
	q.Start(context.Background())
	require.NoError(t, q.Stop(context.Background()))

	err := q.Submit("test_stopped", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrQueueStopped)

	// second stop is a no-op
	assert.NoError(t, q.Stop(context.Background()))
}

func TestDeletionQueue_FailuresAndPanicsAreCounted(t *testing.T) {
	q := newTestQueue(1, 4, time.Second)
	q.Start(context.Background())

	require.NoError(t, q.Submit("test_failing", func(context.Context) error { return errors.New("boom") }))
	require.NoError(t, q.Submit("test_panicking", func(context.Context) error { panic("boom") }))
	require.NoError(t, q.Submit("test_after_panic", func(context.Context) error { return nil }))

	require.NoError(t, q.Stop(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(jobsTotal.WithLabelValues("test_failing", resultFailure)))
	assert.Equal(t, float64(1), testutil.ToFloat64(jobsTotal.WithLabelValues("test_panicking", resultPanic)))
	assert.Equal(t, float64(1), testutil.ToFloat64(jobsTotal.WithLabelValues("test_after_panic", resultSuccess)))
}

func TestDeletionQueue_JobTimeout(t *testing.T) {
	q := newTestQueue(1, 1, 20*time.Millisecond)
	q.Start(context.Background())

	got := make(chan error, 1)
	require.NoError(t, q.Submit("test_timeout", func(ctx context.Context) error {
		<-ctx.Done()
		got <- ctx.Err()
		return ctx.Err()
	}))

	select {
	case err := <-got:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job was not canceled by its timeout")
	}
	require.NoError(t, q.Stop(context.Background()))
}

func TestDeletionQueue_JobsOutliveStartContext(t *testing.T) {
	q := newTestQueue(1, 1, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	q.Start(ctx)
	cancel()

	var ran atomic.Bool
	require.NoError(t, q.Submit("test_detached", func(ctx context.Context) error {
		ran.Store(ctx.Err() == nil)
		return nil
	}))

	require.NoError(t, q.Stop(context.Background()))
	assert.True(t, ran.Load())
}

func TestDeletionQueue_StopDeadline(t *testing.T) {
	q := newTestQueue(1, 1, time.Minute)
	q.Start(context.Background())

	release := make(chan struct{})
	require.NoError(t, q.Submit("test_slow", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
		case <-release:
		}
		return ctx.Err()
	}))
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := q.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
