package workers

import "errors"

var (
	ErrQueueFull    = errors.New("background queue is full")
	ErrQueueStopped = errors.New("background queue is stopped")
	ErrJobPanicked  = errors.New("background job panicked")
)
