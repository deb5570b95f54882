// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

// Package appstate tracks the application-level signals the sync engine
// reacts to: network connectivity, foreground/background state, and the
// logged-in user. The engine never produces these signals, it only consumes
// them; the hosting application feeds them in through the Set* methods.
package appstate

import (
	"sync"
	"time"
)

// Snapshot is an immutable view of the application state at one instant.
// ChangedAt timestamps let observers debounce flapping transitions: a signal
// is considered stable only once it has held its value for the observer's
// debounce window.
type Snapshot struct {
	Online          bool
	OnlineChangedAt time.Time

	Foreground          bool
	ForegroundChangedAt time.Time

	UserID int64
}

// LoggedIn reports whether a user is currently authenticated.
func (s Snapshot) LoggedIn() bool {
	return s.UserID != 0
}

// StableOnline reports whether connectivity has been continuously present
// for at least window as of now.
func (s Snapshot) StableOnline(now time.Time, window time.Duration) bool {
	return s.Online && now.Sub(s.OnlineChangedAt) >= window
}

// Monitor is the shared application-state hub. All methods are safe for
// concurrent use. Observers subscribe for change notifications and then read
// a fresh Snapshot; notifications are collapsed, not queued, so a slow
// observer sees the latest state rather than a backlog.
type Monitor struct {
	mu   sync.Mutex
	snap Snapshot
	subs map[chan struct{}]struct{}

	now func() time.Time
}

// NewMonitor constructs a Monitor that starts offline, in the foreground,
// and logged out.
func NewMonitor() *Monitor {
	m := &Monitor{
		subs: make(map[chan struct{}]struct{}),
		now:  time.Now,
	}
	at := m.now()
	m.snap = Snapshot{
		OnlineChangedAt:     at,
		Foreground:          true,
		ForegroundChangedAt: at,
	}
	return m
}

// Snapshot returns the current application state.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// SetOnline records a connectivity transition. Setting the current value
// again is a no-op and does not reset the transition timestamp.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.snap.Online == online {
		m.mu.Unlock()
		return
	}
	m.snap.Online = online
	m.snap.OnlineChangedAt = m.now()
	m.notifyLocked()
	m.mu.Unlock()
}

// SetForeground records a foreground/background transition.
func (m *Monitor) SetForeground(foreground bool) {
	m.mu.Lock()
	if m.snap.Foreground == foreground {
		m.mu.Unlock()
		return
	}
	m.snap.Foreground = foreground
	m.snap.ForegroundChangedAt = m.now()
	m.notifyLocked()
	m.mu.Unlock()
}

// SetUser records a login. A zero id is ignored; use ClearUser for logout.
func (m *Monitor) SetUser(userID int64) {
	if userID == 0 {
		return
	}
	m.mu.Lock()
	if m.snap.UserID != userID {
		m.snap.UserID = userID
		m.notifyLocked()
	}
	m.mu.Unlock()
}

// ClearUser records a logout.
func (m *Monitor) ClearUser() {
	m.mu.Lock()
	if m.snap.UserID != 0 {
		m.snap.UserID = 0
		m.notifyLocked()
	}
	m.mu.Unlock()
}

// Subscribe registers a change-notification channel and returns it together
// with an unsubscribe function. The channel has a buffer of one; coalesced
// notifications mean a receive guarantees "something changed since the last
// read", not one event per transition.
func (m *Monitor) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()

	return ch, func() {
		m.mu.Lock()
		delete(m.subs, ch)
		m.mu.Unlock()
	}
}

func (m *Monitor) notifyLocked() {
	for ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
