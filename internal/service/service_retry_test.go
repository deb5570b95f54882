package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryScheduler_InvokesActionOnInterval(t *testing.T) {
	r := NewRetryScheduler()
	defer r.EndRetry()

	var calls atomic.Int32
	r.BeginRetry(context.Background(), 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestRetryScheduler_EndRetryStopsLoop(t *testing.T) {
	r := NewRetryScheduler()

	var calls atomic.Int32
	r.BeginRetry(context.Background(), 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)

	r.EndRetry()
	after := calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestRetryScheduler_BeginReplacesRunningLoop(t *testing.T) {
	r := NewRetryScheduler()
	defer r.EndRetry()

	var first, second atomic.Int32
	r.BeginRetry(context.Background(), 10*time.Millisecond, func(context.Context) {
		first.Add(1)
	})
	r.BeginRetry(context.Background(), 10*time.Millisecond, func(context.Context) {
		second.Add(1)
	})

	firstAtSwap := first.Load()

	assert.Eventually(t, func() bool { return second.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	// the first loop stopped when the second began
	assert.Equal(t, firstAtSwap, first.Load())
}

func TestRetryScheduler_ContextCancelStopsLoop(t *testing.T) {
	r := NewRetryScheduler()
	defer r.EndRetry()

	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	r.BeginRetry(ctx, 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestRetryScheduler_EndRetryIdleIsNoop(t *testing.T) {
	r := NewRetryScheduler()
	r.EndRetry()
	r.EndRetry()
}
