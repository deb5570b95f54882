// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/logger"
)

// needsPush reports whether a push attempt is worth dispatching: there must
// be dirty sites, a logged-in user, and connectivity.
func needsPush(loggedIn, online bool, unsyncedIDs []string) bool {
	return loggedIn && online && len(unsyncedIDs) > 0
}

type pushDispatcher struct {
	sync      ClientSyncService
	requester PullRequester
	retry     RetryScheduler
	state     *appstate.Monitor

	debounce      time.Duration
	retryInterval time.Duration
	logger        *logger.Logger

	changed chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPushDispatcher wires the push loop: local-edit notifications are
// debounced into batch push attempts, transport failures start the retry
// cycle, and per-site rejections raise the pull-requested flag so local
// state re-converges with the server.
func NewPushDispatcher(syncService ClientSyncService, requester PullRequester, retry RetryScheduler, state *appstate.Monitor, debounce, retryInterval time.Duration, log *logger.Logger) PushDispatcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if retryInterval <= 0 {
		retryInterval = time.Minute
	}
	return &pushDispatcher{
		sync:          syncService,
		requester:     requester,
		retry:         retry,
		state:         state,
		debounce:      debounce,
		retryInterval: retryInterval,
		logger:        log,
		changed:       make(chan struct{}, 1),
	}
}

func (d *pushDispatcher) NotifyChange() {
	select {
	case d.changed <- struct{}{}:
	default:
	}
}

// Start launches the dispatcher goroutine. A change notification arms a
// debounce timer; further notifications inside the window re-arm it, so a
// burst of edits produces one batch push.
func (d *pushDispatcher) Start(ctx context.Context) {
	d.Stop()

	d.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	stateCh, unsubscribe := d.state.Subscribe()

	go func() {
		defer d.wg.Done()
		defer unsubscribe()

		debounce := time.NewTimer(d.debounce)
		if !debounce.Stop() {
			<-debounce.C
		}

		for {
			select {
			case <-jobCtx.Done():
				debounce.Stop()
				return
			case <-d.changed:
				debounce.Reset(d.debounce)
			case <-stateCh:
				debounce.Reset(d.debounce)
			case <-debounce.C:
				d.dispatch(jobCtx)
			}
		}
	}()
}

// Stop cancels the dispatcher goroutine, the retry loop included, and
// blocks until both have exited.
func (d *pushDispatcher) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.retry.EndRetry()
	d.wg.Wait()
}

func (d *pushDispatcher) dispatch(ctx context.Context) {
	snap := d.state.Snapshot()
	unsynced, err := d.sync.UnsyncedSiteIDs(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to read unsynced site ids, skipping push")
		return
	}
	if !needsPush(snap.LoggedIn(), snap.Online, unsynced) {
		return
	}

	d.push(ctx)
}

// push runs one push attempt over both collections and reacts to the
// outcome: transport failure starts the retry cycle, per-site rejections
// request a pull, and a clean result ends any running retry cycle.
func (d *pushDispatcher) push(ctx context.Context) {
	soilResults, soilErr := d.sync.PushSoilData(ctx, nil)
	metaResults, metaErr := d.sync.PushSoilMetadata(ctx, nil)

	if errors.Is(soilErr, ErrPushInFlight) || errors.Is(metaErr, ErrPushInFlight) {
		// Another attempt is running; its outcome drives the next step.
		return
	}

	if soilErr != nil || metaErr != nil {
		if soilErr != nil {
			d.logger.Warn().Err(soilErr).Msg("soil data push failed, scheduling retry")
		}
		if metaErr != nil {
			d.logger.Warn().Err(metaErr).Msg("soil metadata push failed, scheduling retry")
		}
		// The retry loop only pokes the dispatcher; the dispatcher
		// goroutine owns every BeginRetry/EndRetry call, so the scheduler
		// is never stopped from inside its own action.
		d.retry.BeginRetry(ctx, d.retryInterval, func(context.Context) { d.NotifyChange() })
		return
	}

	d.retry.EndRetry()

	if soilResults.HasErrors() || metaResults.HasErrors() {
		// Rejections may mean local state diverged from the server.
		d.requester.Request()
	}
}
