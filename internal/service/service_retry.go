package service

import (
	"context"
	"sync"
	"time"
)

type retryScheduler struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetryScheduler creates an idle [RetryScheduler].
func NewRetryScheduler() RetryScheduler {
	return &retryScheduler{}
}

// BeginRetry implements RetryScheduler. The previous loop, if any, is fully
// stopped before the new one starts, so two loops never overlap.
func (r *retryScheduler) BeginRetry(ctx context.Context, interval time.Duration, action func(context.Context)) {
	if interval <= 0 {
		interval = time.Minute
	}

	r.EndRetry()

	r.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				action(loopCtx)
			}
		}
	}()
}

// EndRetry implements RetryScheduler. Safe to call when idle.
func (r *retryScheduler) EndRetry() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
