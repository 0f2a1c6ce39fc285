// Package workers runs the application's background workers in a unified
// way. A worker is anything with a Run method: the identity event pump, a
// catalog prefetcher, or any other long-lived concern started at boot.
package workers

// Worker is a background concern started once at application boot.
// Implementations either block for the duration of their work or spawn
// goroutines internally.
type Worker interface {
	Run()
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func()

func (f WorkerFunc) Run() { f() }
