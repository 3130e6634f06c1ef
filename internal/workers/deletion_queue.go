// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
)

const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 256
	DefaultJobTimeout  = time.Minute
)

type job struct {
	kind string
	run  func(context.Context) error
}

// DeletionQueue is a bounded queue drained by a fixed number of goroutines.
// Jobs run detached from the request that submitted them, each under its
// own timeout.
type DeletionQueue struct {
	jobs    chan job
	count   int
	timeout time.Duration
	logger  *logger.Logger

	mu      sync.RWMutex
	started bool
	stopped bool

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewDeletionQueue(cfg config.Workers, log *logger.Logger) *DeletionQueue {
	if cfg.Count <= 0 {
		cfg.Count = DefaultWorkerCount
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultJobTimeout
	}

	return &DeletionQueue{
		jobs:    make(chan job, cfg.QueueSize),
		count:   cfg.Count,
		timeout: cfg.JobTimeout,
		logger:  log,
	}
}

// Submit enqueues a job without blocking.
func (q *DeletionQueue) Submit(kind string, run func(context.Context) error) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return ErrQueueStopped
	}

	select {
	case q.jobs <- job{kind: kind, run: run}:
		queueDepth.Inc()
		return nil
	default:
		jobsTotal.WithLabelValues(kind, resultRejected).Inc()
		q.logger.Warn().Str("func", "*DeletionQueue.Submit").Str("kind", kind).Msg("queue is full, job rejected")
		return ErrQueueFull
	}
}

// Start spawns the worker goroutines. Jobs keep the values of ctx but are
// only canceled by Stop.
func (q *DeletionQueue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.stopped {
		return
	}
	q.started = true
	q.ctx, q.cancel = context.WithCancel(context.WithoutCancel(ctx))

	for i := 0; i < q.count; i++ {
		q.wg.Add(1)
		go q.runWorker(i + 1)
	}

	q.logger.Info().Str("func", "*DeletionQueue.Start").Int("workers", q.count).Int("capacity", cap(q.jobs)).Msg("deletion queue started")
}

// Stop rejects new jobs and waits for the queued ones. When ctx is done
// first, running jobs are canceled and the remaining ones dropped.
func (q *DeletionQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return nil
	}
	q.stopped = true
	close(q.jobs)
	started := q.started
	q.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.cancel()
		q.logger.Info().Str("func", "*DeletionQueue.Stop").Msg("deletion queue drained")
		return nil
	case <-ctx.Done():
		q.cancel()
		q.logger.Warn().Str("func", "*DeletionQueue.Stop").Int("pending", len(q.jobs)).Msg("deletion queue stopped before draining")
		return fmt.Errorf("stopping deletion queue: %w", ctx.Err())
	}
}

func (q *DeletionQueue) runWorker(id int) {
	defer q.wg.Done()

	for j := range q.jobs {
		queueDepth.Dec()
		if q.ctx.Err() != nil {
			jobsTotal.WithLabelValues(j.kind, resultRejected).Inc()
			continue
		}
		q.execute(id, j)
	}
}

func (q *DeletionQueue) execute(workerID int, j job) {
	ctx, cancel := context.WithTimeout(q.ctx, q.timeout)
	defer cancel()

	start := time.Now()
	err := q.safeRun(ctx, j)
	jobDuration.WithLabelValues(j.kind).Observe(time.Since(start).Seconds())

	log := q.logger.With().Str("func", "*DeletionQueue.execute").Int("worker", workerID).Str("kind", j.kind).Logger()
	switch {
	case err == nil:
		jobsTotal.WithLabelValues(j.kind, resultSuccess).Inc()
		log.Debug().Dur("took", time.Since(start)).Msg("job finished")
	case errors.Is(err, ErrJobPanicked):
		jobsTotal.WithLabelValues(j.kind, resultPanic).Inc()
		log.Error().Err(err).Msg("job panicked")
	default:
		jobsTotal.WithLabelValues(j.kind, resultFailure).Inc()
		log.Error().Err(err).Msg("job failed")
	}
}

func (q *DeletionQueue) safeRun(ctx context.Context, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return j.run(ctx)
}
