// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"sync"
	"time"

	"github.com/soilstack/fieldsync/models"
)

// SyncState is the in-memory revision bookkeeping for one synchronizable
// collection: per-entity change records tracking the locally observed
// revision, the last successfully synced snapshot, and the last sync error.
//
// It is an explicit dependency-injected value rather than ambient state, so
// tests can construct isolated instances. All methods are safe for
// concurrent use.
type SyncState[D any, E any] struct {
	mu      sync.Mutex
	records map[string]models.ChangeRecord[D, E]
}

// NewSyncState constructs an empty [SyncState].
func NewSyncState[D any, E any]() *SyncState[D, E] {
	return &SyncState[D, E]{
		records: make(map[string]models.ChangeRecord[D, E]),
	}
}

// MarkChanged advances the revision of each id for an accepted local
// mutation.
func (s *SyncState[D, E]) MarkChanged(ids []string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		markChanged(s.records, id, at)
	}
}

// UnsyncedIDs returns the ids whose current revision has not been confirmed
// by the server, in lexicographic order.
func (s *SyncState[D, E]) UnsyncedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return unsyncedIDs(s.records)
}

// ErroredIDs returns the ids whose most recent sync attempt failed, in
// lexicographic order.
func (s *SyncState[D, E]) ErroredIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return erroredIDs(s.records)
}

// CaptureRevisions records the current revision of each id, for correlating
// a push request with its eventual response.
func (s *SyncState[D, E]) CaptureRevisions(ids []string) map[string]models.RevisionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return revisionsOf(s.records, ids)
}

// LastSyncedData returns the snapshot from the entity's last successful
// sync, or nil for an entity that has never completed one.
func (s *SyncState[D, E]) LastSyncedData(id string) *D {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records[id].LastSyncedData
}

// ApplyResults folds a push reconciliation into the state: stale entries
// (whose recorded revision no longer matches the entity's current revision)
// are discarded, fresh successes store the authoritative data and clear the
// error, fresh failures record the error. The returned set contains only the
// fresh entries that were applied.
func (s *SyncState[D, E]) ApplyResults(results models.SyncResults[D, E], at time.Time) models.SyncResults[D, E] {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := resultsForCurrentRevisions(s.records, results)
	applySyncResults(s.records, fresh, at)
	return fresh
}

// MarkPulled records a pull's authoritative snapshot for each entity: the
// data becomes the new last-synced baseline at the entity's current
// revision, so the entity reads as fully synced.
func (s *SyncState[D, E]) MarkPulled(data map[string]D, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, value := range data {
		record := s.records[id]
		markSynced(s.records, id, models.SyncedValue[D]{
			RevisionID: record.RevisionID,
			Value:      value,
		}, at)
	}
}

// Record returns a copy of the change record for one id. The zero record is
// returned for unknown ids.
func (s *SyncState[D, E]) Record(id string) models.ChangeRecord[D, E] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records[id]
}
