// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"context"
	"sync"
	"time"

	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/logger"
)

// PullAllowed is the pull eligibility gate: a pull may run only when the
// user is logged in, connectivity is present and stable, the app is in the
// foreground, and no unsynced local edits exist. The last condition is the
// safety invariant — a pull replaces local caches wholesale, so any dirty
// site id blocks it regardless of the other inputs.
func PullAllowed(loggedIn, online, foreground bool, unsyncedIDs []string) bool {
	return loggedIn && online && foreground && len(unsyncedIDs) == 0
}

type pullDispatcher struct {
	requester PullRequester
	sync      ClientSyncService
	state     *appstate.Monitor

	debounce time.Duration
	logger   *logger.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPullDispatcher wires the dispatcher over the requester flag, the sync
// service, and the application-state hub. The debounce window guards the
// connectivity input against rapid online/offline flapping.
func NewPullDispatcher(requester PullRequester, syncService ClientSyncService, state *appstate.Monitor, debounce time.Duration, log *logger.Logger) PullDispatcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &pullDispatcher{
		requester: requester,
		sync:      syncService,
		state:     state,
		debounce:  debounce,
		logger:    log,
		now:       time.Now,
	}
}

// Start launches the dispatcher goroutine. It re-evaluates the gate on every
// requester notification, on every application-state change, and on a short
// periodic tick that covers debounce windows elapsing without a new event.
// A connectivity transition that settles back online raises the pull flag.
func (d *pullDispatcher) Start(ctx context.Context) {
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

		t := time.NewTicker(d.debounce)
		defer t.Stop()

		wasOnline := d.state.Snapshot().StableOnline(d.now(), d.debounce)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-d.requester.Notify():
			case <-stateCh:
			case <-t.C:
			}
			if online := d.state.Snapshot().StableOnline(d.now(), d.debounce); online != wasOnline {
				wasOnline = online
				if online {
					// Regaining connectivity is itself a pull trigger.
					d.requester.Request()
				}
			}
			d.dispatch(jobCtx)
		}
	}()
}

// Stop cancels the dispatcher goroutine and blocks until it has exited.
func (d *pullDispatcher) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
}

// dispatch clears the flag and pulls, but only when the flag is raised and
// the gate is open. Clearing happens before the pull so a trigger arriving
// mid-pull raises the flag again and schedules a follow-up.
func (d *pullDispatcher) dispatch(ctx context.Context) {
	if !d.requester.Requested() {
		return
	}

	snap := d.state.Snapshot()
	unsynced, err := d.sync.UnsyncedSiteIDs(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to read unsynced site ids, skipping pull")
		return
	}

	if !PullAllowed(snap.LoggedIn(), snap.StableOnline(d.now(), d.debounce), snap.Foreground, unsynced) {
		return
	}

	d.requester.Clear()
	if err := d.sync.Pull(ctx); err != nil {
		d.logger.Error().Err(err).Msg("pull failed")
		// Transport failures are retried on the next trigger.
		d.requester.Request()
	}
}
