// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package models

import (
	"encoding/json"
	"time"
)

// RevisionID identifies a specific observed state of an entity since the last
// sync, monotonically increasing for each local change. An entity is
// considered unsynced when its current revision and last-synced revision do
// not match; a sync result is stale when it declares a revision that no
// longer matches the entity.
//
// The zero value is the initial revision: a never-modified, never-synced
// entity has matching revisions and therefore nothing to sync.
type RevisionID int64

// InitialRevisionID is the revision of an entity before any local change.
const InitialRevisionID RevisionID = 0

// NextRevisionID returns the revision assigned to the state following id.
func NextRevisionID(id RevisionID) RevisionID {
	return id + 1
}

// RevisionIDsMatch reports whether two revisions identify the same state.
func RevisionIDsMatch(a, b RevisionID) bool {
	return a == b
}

// SyncRecord marks an entity id as dirty. Existence of the record in the
// dirty set is the only signal; the entity's content lives elsewhere.
//
// At most one record exists per id: marking an already-dirty id refreshes
// UpdatedAt instead of duplicating the record.
type SyncRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Valid reports whether a persisted record is structurally usable.
// Records that fail this check are dropped at the read boundary rather than
// surfaced as errors, since a corrupt dirty marker is recoverable by
// treating it as absent.
func (r SyncRecord) Valid() bool {
	return r.ID != "" && !r.CreatedAt.IsZero() && !r.UpdatedAt.IsZero()
}

// LocalDatum is the durable wrapper around one entity's content plus its
// sync status. IsDirty is set on every local write and cleared only by a
// confirmed successful push of that write.
type LocalDatum[T any] struct {
	IsDirty   bool       `json:"isDirty"`
	WrittenAt time.Time  `json:"writtenAt"`
	SyncedAt  *time.Time `json:"syncedAt"`
	Content   T          `json:"content"`
}

// UnmarshalLocalDatum decodes a persisted datum, reporting ok=false for
// structurally unusable entries so callers can filter them out silently.
func UnmarshalLocalDatum[T any](raw json.RawMessage) (LocalDatum[T], bool) {
	var datum LocalDatum[T]
	if err := json.Unmarshal(raw, &datum); err != nil {
		return LocalDatum[T]{}, false
	}
	if datum.WrittenAt.IsZero() {
		return LocalDatum[T]{}, false
	}
	return datum, true
}

// ChangeRecord tracks the modification and sync history of one entity.
//
// The current revision advances on every accepted local mutation. Marking the
// record synced stores the authoritative data and the revision the sync was
// for; marking it errored stores the failure reason while retaining the data
// from the last successful sync. Records are value types: the mark helpers in
// the service layer return updated copies rather than mutating in place.
type ChangeRecord[D any, E any] struct {
	RevisionID     RevisionID `json:"revisionId"`
	LastModifiedAt time.Time  `json:"lastModifiedAt"`

	LastSyncedRevisionID RevisionID `json:"lastSyncedRevisionId"`
	LastSyncedAt         time.Time  `json:"lastSyncedAt"`

	// LastSyncedData is the last successfully-synced content for the entity,
	// used as the previous snapshot when diffing. Nil for entities that have
	// never completed a sync.
	LastSyncedData *D `json:"lastSyncedData,omitempty"`

	// LastSyncedError is the failure from the most recent sync attempt,
	// cleared on the next success.
	LastSyncedError *E `json:"lastSyncedError,omitempty"`
}

// Unsynced reports whether the entity has local changes not yet confirmed by
// the server.
func (r ChangeRecord[D, E]) Unsynced() bool {
	return !RevisionIDsMatch(r.RevisionID, r.LastSyncedRevisionID)
}

// Errored reports whether the most recent sync attempt for the entity failed.
func (r ChangeRecord[D, E]) Errored() bool {
	return r.LastSyncedError != nil
}

// SyncedValue is a value produced by syncing an entity at a specific
// revision. The revision is the one captured at push time and is used to
// detect stale results on application.
type SyncedValue[T any] struct {
	RevisionID RevisionID `json:"revisionId"`
	Value      T          `json:"value"`
}

// SyncResults is the reconciliation of one push attempt. For each entity in the
// pushed batch exactly one of Data or Errors receives an entry, each carrying
// the revision recorded in the corresponding request entry.
type SyncResults[D any, E any] struct {
	Data   map[string]SyncedValue[D]
	Errors map[string]SyncedValue[E]
}

// NewSyncResults returns an empty result set with both maps allocated.
func NewSyncResults[D any, E any]() SyncResults[D, E] {
	return SyncResults[D, E]{
		Data:   map[string]SyncedValue[D]{},
		Errors: map[string]SyncedValue[E]{},
	}
}

// HasErrors reports whether any entity in the batch was rejected.
func (r SyncResults[D, E]) HasErrors() bool {
	return len(r.Errors) > 0
}
