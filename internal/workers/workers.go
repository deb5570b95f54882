// Package workers provides a small aggregate for the client daemon's
// background goroutines: the pull dispatcher, the push dispatcher, and the
// interval pull trigger. Workers start together and stop in reverse order.
package workers

import "context"

// Worker is the lifecycle contract for one background component.
// Start must not block; Stop must block until the worker has fully exited
// and must be safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Func adapts a pair of functions to the Worker interface.
type Func struct {
	StartFunc func(ctx context.Context)
	StopFunc  func()
}

func (f Func) Start(ctx context.Context) {
	if f.StartFunc != nil {
		f.StartFunc(ctx)
	}
}

func (f Func) Stop() {
	if f.StopFunc != nil {
		f.StopFunc()
	}
}

// Workers runs a fixed set of workers as a unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start launches every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop halts every worker in reverse registration order, so consumers stop
// after their producers.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
