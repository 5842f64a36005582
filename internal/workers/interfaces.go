// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers until their shared context ends.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done and returns nil in that case. A non-nil
// error stops every other worker of the same [Workers].
type Worker interface {
	Run(ctx context.Context) error
}
