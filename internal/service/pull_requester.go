// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/soilstack/fieldsync/internal/logger"
)

// pullRequester folds every pull trigger into one boolean flag. Triggers
// are: cold start, login, the offline-to-online transition, a push response
// carrying per-site errors, and a fixed wall-clock interval. The flag stays
// raised until the dispatcher finds the gate open and clears it, so a
// trigger fired while pulling is ineligible is never lost.
type pullRequester struct {
	mu        sync.Mutex
	requested bool
	cron      *cron.Cron

	notify chan struct{}
	logger *logger.Logger
}

// NewPullRequester constructs an idle [PullRequester] with the flag lowered.
func NewPullRequester(log *logger.Logger) PullRequester {
	return &pullRequester{
		notify: make(chan struct{}, 1),
		logger: log,
	}
}

func (p *pullRequester) Request() {
	p.mu.Lock()
	p.requested = true
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

func (p *pullRequester) Requested() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requested
}

func (p *pullRequester) Clear() {
	p.mu.Lock()
	p.requested = false
	p.mu.Unlock()
}

func (p *pullRequester) Notify() <-chan struct{} {
	return p.notify
}

// StartInterval raises the flag every interval on the wall clock,
// independent of connectivity, foreground, or error state. Restarting
// replaces the previous schedule.
func (p *pullRequester) StartInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), p.Request); err != nil {
		// "@every <duration>" is always parseable for a positive interval.
		p.logger.Error().Err(err).Msg("failed to schedule pull interval")
		return
	}
	c.Start()

	p.cron = c
	p.logger.Debug().Dur("interval", interval).Msg("pull interval scheduled")
}

// Stop halts the interval schedule. The flag itself is left as is.
func (p *pullRequester) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}
