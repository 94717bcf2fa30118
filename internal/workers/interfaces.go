// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker. Implementations spawn their own goroutines and
// return immediately. Stop blocks until the worker has exited and must be
// safe to call on a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { /* start background processing */ }
//	func (w *MyWorker) Stop() { /* wait for it to finish */ }
type Worker interface {
	Run()
	Stop()
}
