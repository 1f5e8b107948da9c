// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the work continues in
// goroutines owned by the worker until ctx is cancelled or Stop is called.
// Stop must wait for those goroutines to exit and be safe to call on a
// worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
