// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"sort"
	"time"

	"github.com/soilstack/fieldsync/models"
)

// Change record bookkeeping. These helpers operate on the in-memory record
// map guarded by [SyncState]; they are not safe for concurrent use on their
// own.

// markChanged advances the entity's revision for an accepted local mutation.
// A fresh record starts at the initial revision, so the first edit moves it
// to revision 1 and the entity reads as unsynced.
func markChanged[D, E any](records map[string]models.ChangeRecord[D, E], id string, at time.Time) {
	record := records[id]
	record.RevisionID = models.NextRevisionID(record.RevisionID)
	record.LastModifiedAt = at
	records[id] = record
}

// markSynced stores the authoritative post-sync data for the entity along
// with the revision the sync was for, and clears any previous sync error.
func markSynced[D, E any](records map[string]models.ChangeRecord[D, E], id string, value models.SyncedValue[D], at time.Time) {
	record := records[id]
	record.LastSyncedRevisionID = value.RevisionID
	data := value.Value
	record.LastSyncedData = &data
	record.LastSyncedError = nil
	record.LastSyncedAt = at
	records[id] = record
}

// markError records the failure of a sync attempt at the given revision.
// The data from the last successful sync is retained for future diffing.
func markError[D, E any](records map[string]models.ChangeRecord[D, E], id string, value models.SyncedValue[E], at time.Time) {
	record := records[id]
	record.LastSyncedRevisionID = value.RevisionID
	reason := value.Value
	record.LastSyncedError = &reason
	record.LastSyncedAt = at
	records[id] = record
}

// unsyncedIDs returns, in lexicographic order, the ids whose current revision
// has not been confirmed by the server.
func unsyncedIDs[D, E any](records map[string]models.ChangeRecord[D, E]) []string {
	ids := make([]string, 0, len(records))
	for id, record := range records {
		if record.Unsynced() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// erroredIDs returns, in lexicographic order, the ids whose most recent sync
// attempt failed.
func erroredIDs[D, E any](records map[string]models.ChangeRecord[D, E]) []string {
	ids := make([]string, 0, len(records))
	for id, record := range records {
		if record.Errored() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// revisionsOf captures the current revision of each requested id. The
// captured values correlate a push request with its response: results are
// applied only if the entity's revision still matches at application time.
func revisionsOf[D, E any](records map[string]models.ChangeRecord[D, E], ids []string) map[string]models.RevisionID {
	revisions := make(map[string]models.RevisionID, len(ids))
	for _, id := range ids {
		revisions[id] = records[id].RevisionID
	}
	return revisions
}

// resultsForCurrentRevisions filters a result set down to the entries whose
// recorded revision still matches the entity's current revision. An entity
// edited again while its push was in flight has advanced past the pushed
// revision; its result is stale and must not overwrite the newer local state.
func resultsForCurrentRevisions[D, E any](
	records map[string]models.ChangeRecord[D, E],
	results models.SyncResults[D, E],
) models.SyncResults[D, E] {
	fresh := models.NewSyncResults[D, E]()
	for id, value := range results.Data {
		if models.RevisionIDsMatch(records[id].RevisionID, value.RevisionID) {
			fresh.Data[id] = value
		}
	}
	for id, value := range results.Errors {
		if models.RevisionIDsMatch(records[id].RevisionID, value.RevisionID) {
			fresh.Errors[id] = value
		}
	}
	return fresh
}

// applySyncResults folds a (pre-filtered) result set into the record map.
func applySyncResults[D, E any](
	records map[string]models.ChangeRecord[D, E],
	results models.SyncResults[D, E],
	at time.Time,
) {
	for id, value := range results.Data {
		markSynced(records, id, value, at)
	}
	for id, value := range results.Errors {
		markError(records, id, value, at)
	}
}
