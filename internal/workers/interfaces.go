// Package workers runs the background jobs of the server.
//
// The [DeletionQueue] executes bulk deletions accepted by the HTTP layer
// after the response has been sent, and the [Workers] aggregate starts and
// stops every background component together with the server.
package workers

import "context"

// Worker is a background component started with the server.
//
// Start must return promptly; long running work belongs in goroutines
// owned by the worker. Stop waits for that work or until ctx is done.
type Worker interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}
