package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/soilstack/fieldsync/internal/logger"
)

func TestPullRequester_RequestRaisesFlagAndNotifies(t *testing.T) {
	r := NewPullRequester(logger.Nop())

	assert.False(t, r.Requested())

	r.Request()
	assert.True(t, r.Requested())

	select {
	case <-r.Notify():
	default:
		t.Fatal("expected a notification after Request")
	}
}

func TestPullRequester_NotificationsCoalesce(t *testing.T) {
	r := NewPullRequester(logger.Nop())

	r.Request()
	r.Request()
	r.Request()

	<-r.Notify()
	select {
	case <-r.Notify():
		t.Fatal("expected repeated requests to coalesce into one notification")
	default:
	}

	// the flag itself is unaffected by draining the channel
	assert.True(t, r.Requested())
}

func TestPullRequester_ClearLowersFlag(t *testing.T) {
	r := NewPullRequester(logger.Nop())

	r.Request()
	r.Clear()

	assert.False(t, r.Requested())
}

func TestPullRequester_IntervalRaisesFlag(t *testing.T) {
	r := NewPullRequester(logger.Nop())
	defer r.Stop()

	r.StartInterval(20 * time.Millisecond)

	assert.Eventually(t, r.Requested, 2*time.Second, 5*time.Millisecond)
}

func TestPullRequester_StopHaltsInterval(t *testing.T) {
	r := NewPullRequester(logger.Nop())

	r.StartInterval(10 * time.Millisecond)
	r.Stop()
	r.Clear()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, r.Requested())
}

func TestPullRequester_StopWithoutStartIsNoop(t *testing.T) {
	r := NewPullRequester(logger.Nop())
	r.Stop()
	r.Stop()
}
