// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/mock"
	"github.com/soilstack/fieldsync/models"
)

func TestNeedsPush(t *testing.T) {
	dirty := []string{"site-a"}

	assert.True(t, needsPush(true, true, dirty))
	assert.False(t, needsPush(false, true, dirty))
	assert.False(t, needsPush(true, false, dirty))
	assert.False(t, needsPush(true, true, nil))
	assert.False(t, needsPush(true, true, []string{}))
}

func emptySoilResults() models.SyncResults[models.SoilData, models.SyncFailureReason] {
	return models.NewSyncResults[models.SoilData, models.SyncFailureReason]()
}

func emptyMetaResults() models.SyncResults[models.SoilMetadata, models.SyncFailureReason] {
	return models.NewSyncResults[models.SoilMetadata, models.SyncFailureReason]()
}

func TestPushDispatcher_EditBurstProducesOnePush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	requester := NewPullRequester(logger.Nop())

	state := appstate.NewMonitor()
	state.SetUser(1)
	state.SetOnline(true)

	mockSync.EXPECT().UnsyncedSiteIDs(gomock.Any()).Return([]string{"site-a"}, nil).AnyTimes()

	pushed := make(chan struct{})
	mockSync.EXPECT().PushSoilData(gomock.Any(), nil).Return(emptySoilResults(), nil)
	mockSync.EXPECT().PushSoilMetadata(gomock.Any(), nil).DoAndReturn(
		func(context.Context, []string) (models.SyncResults[models.SoilMetadata, models.SyncFailureReason], error) {
			close(pushed)
			return emptyMetaResults(), nil
		})

	d := NewPushDispatcher(mockSync, requester, NewRetryScheduler(), state, 20*time.Millisecond, time.Minute, logger.Nop())
	d.Start(context.Background())
	defer d.Stop()

	// three rapid edits land inside one debounce window
	for i := 0; i < 3; i++ {
		d.NotifyChange()
	}

	select {
	case <-pushed:
	case <-time.After(time.Second):
		t.Fatal("expected a push to be dispatched")
	}
}

func TestPushDispatcher_NoPushWhileLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	requester := NewPullRequester(logger.Nop())

	state := appstate.NewMonitor()
	state.SetOnline(true)

	// no Push expectations: a push call would fail the controller
	mockSync.EXPECT().UnsyncedSiteIDs(gomock.Any()).Return([]string{"site-a"}, nil).AnyTimes()

	d := NewPushDispatcher(mockSync, requester, NewRetryScheduler(), state, 10*time.Millisecond, time.Minute, logger.Nop())
	d.Start(context.Background())
	defer d.Stop()

	d.NotifyChange()
	time.Sleep(50 * time.Millisecond)
}

func TestPushDispatcher_RejectionsRequestPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	requester := NewPullRequester(logger.Nop())

	state := appstate.NewMonitor()
	state.SetUser(1)
	state.SetOnline(true)

	rejected := emptySoilResults()
	rejected.Errors["site-a"] = models.SyncedValue[models.SyncFailureReason]{RevisionID: 1, Value: models.FailureDoesNotExist}

	mockSync.EXPECT().UnsyncedSiteIDs(gomock.Any()).Return([]string{"site-a"}, nil).AnyTimes()
	mockSync.EXPECT().PushSoilData(gomock.Any(), nil).Return(rejected, nil)
	mockSync.EXPECT().PushSoilMetadata(gomock.Any(), nil).Return(emptyMetaResults(), nil)

	d := NewPushDispatcher(mockSync, requester, NewRetryScheduler(), state, 10*time.Millisecond, time.Minute, logger.Nop())
	d.Start(context.Background())
	defer d.Stop()

	d.NotifyChange()

	assert.Eventually(t, requester.Requested, time.Second, 5*time.Millisecond)
}

func TestPushDispatcher_TransportFailureSchedulesRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	mockRetry := mock.NewMockRetryScheduler(ctrl)
	requester := NewPullRequester(logger.Nop())

	state := appstate.NewMonitor()
	state.SetUser(1)
	state.SetOnline(true)

	mockSync.EXPECT().UnsyncedSiteIDs(gomock.Any()).Return([]string{"site-a"}, nil).AnyTimes()
	mockSync.EXPECT().PushSoilData(gomock.Any(), nil).
		Return(models.SyncResults[models.SoilData, models.SyncFailureReason]{}, errors.New("connection refused"))
	mockSync.EXPECT().PushSoilMetadata(gomock.Any(), nil).Return(emptyMetaResults(), nil)

	scheduled := make(chan struct{})
	mockRetry.EXPECT().
		BeginRetry(gomock.Any(), time.Minute, gomock.Any()).
		Do(func(context.Context, time.Duration, func(context.Context)) { close(scheduled) })
	mockRetry.EXPECT().EndRetry().AnyTimes() // Stop always ends the retry cycle

	d := NewPushDispatcher(mockSync, requester, mockRetry, state, 10*time.Millisecond, time.Minute, logger.Nop())
	d.Start(context.Background())
	defer d.Stop()

	d.NotifyChange()

	select {
	case <-scheduled:
	case <-time.After(time.Second):
		t.Fatal("expected a retry cycle to be scheduled")
	}

	// a pull is not requested on transport failure
	assert.False(t, requester.Requested())
}

func TestPushDispatcher_RetryPokesDispatcherUntilSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	requester := NewPullRequester(logger.Nop())

	state := appstate.NewMonitor()
	state.SetUser(1)
	state.SetOnline(true)

	// once the second attempt succeeds, the dirty set reads empty so any
	// late dispatch is a no-op
	var synced atomic.Bool
	mockSync.EXPECT().UnsyncedSiteIDs(gomock.Any()).DoAndReturn(
		func(context.Context) ([]string, error) {
			if synced.Load() {
				return nil, nil
			}
			return []string{"site-a"}, nil
		}).AnyTimes()

	done := make(chan struct{})
	gomock.InOrder(
		mockSync.EXPECT().PushSoilData(gomock.Any(), nil).
			Return(models.SyncResults[models.SoilData, models.SyncFailureReason]{}, errors.New("connection refused")),
		mockSync.EXPECT().PushSoilData(gomock.Any(), nil).DoAndReturn(
			func(context.Context, []string) (models.SyncResults[models.SoilData, models.SyncFailureReason], error) {
				synced.Store(true)
				close(done)
				return emptySoilResults(), nil
			}),
	)
	mockSync.EXPECT().PushSoilMetadata(gomock.Any(), nil).Return(emptyMetaResults(), nil).Times(2)

	d := NewPushDispatcher(mockSync, requester, NewRetryScheduler(), state, 10*time.Millisecond, 25*time.Millisecond, logger.Nop())
	d.Start(context.Background())
	defer d.Stop()

	d.NotifyChange()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the retry cycle to drive a second push attempt")
	}
}

func TestPushDispatcher_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	requester := NewPullRequester(logger.Nop())

	d := NewPushDispatcher(mockSync, requester, NewRetryScheduler(), appstate.NewMonitor(), time.Millisecond, time.Minute, logger.Nop())

	d.Stop() // never started
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}
