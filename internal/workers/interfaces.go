// Package workers provides the concurrency primitives of the sync client:
// long-running background workers, a dependency-aware operation queue for
// remote store calls, and a serial executor for ordered callbacks.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning
// ctx.Err() after cancellation is not treated as a failure.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return ctx.Err()
//	}
type Worker interface {
	Run(ctx context.Context) error
}
