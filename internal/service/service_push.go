// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/soilstack/fieldsync/internal/adapter"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/store"
	"github.com/soilstack/fieldsync/models"
)

type clientSyncService struct {
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter

	soilState *SyncState[models.SoilData, models.SyncFailureReason]
	metaState *SyncState[models.SoilMetadata, models.SyncFailureReason]

	// pushMu serializes push attempts: a dispatched push runs to completion
	// before the next one is considered.
	pushMu sync.Mutex

	// soilMu and metaMu serialize local edits against the reconcile and
	// pull writes of their collection, so an edit cannot land between a
	// revision check and the storage write it authorizes.
	soilMu sync.Mutex
	metaMu sync.Mutex

	logger *logger.Logger
	now    func() time.Time
}

// NewClientSyncService wires the synchronization engine over the client
// storages and the server adapter.
func NewClientSyncService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		storages:  storages,
		adapter:   serverAdapter,
		soilState: NewSyncState[models.SoilData, models.SyncFailureReason](),
		metaState: NewSyncState[models.SoilMetadata, models.SyncFailureReason](),
		logger:    log,
		now:       time.Now,
	}
}

func (s *clientSyncService) RecordSoilDataChange(ctx context.Context, siteID string, data models.SoilData) error {
	s.soilMu.Lock()
	defer s.soilMu.Unlock()

	if err := s.storages.SoilData.Write(ctx, siteID, data); err != nil {
		return fmt.Errorf("write soil data: %w", err)
	}
	if err := s.storages.SoilDataSyncRecords.MarkDirty(ctx, []string{siteID}); err != nil {
		return fmt.Errorf("mark soil data dirty: %w", err)
	}
	s.soilState.MarkChanged([]string{siteID}, s.now())
	return nil
}

func (s *clientSyncService) RecordSoilMetadataChange(ctx context.Context, siteID string, metadata models.SoilMetadata) error {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	if err := s.storages.SoilMetadata.Write(ctx, siteID, metadata); err != nil {
		return fmt.Errorf("write soil metadata: %w", err)
	}
	if err := s.storages.SoilMetadataSyncRecords.MarkDirty(ctx, []string{siteID}); err != nil {
		return fmt.Errorf("mark soil metadata dirty: %w", err)
	}
	s.metaState.MarkChanged([]string{siteID}, s.now())
	return nil
}

// PushSoilData performs one gather/transmit/reconcile cycle for the soil
// data collection.
//
// Gather reads the dirty ids intersected with siteIDs and captures each
// site's current revision. Transmit sends a single batch with one minimal
// diff per site. Reconcile correlates the per-site results with the captured
// revisions: fresh successes persist the server's authoritative payload and
// flush the sync record; failures and stale results leave the site dirty for
// a later pass.
func (s *clientSyncService) PushSoilData(ctx context.Context, siteIDs []string) (models.SyncResults[models.SoilData, models.SyncFailureReason], error) {
	zero := models.SyncResults[models.SoilData, models.SyncFailureReason]{}

	if !s.pushMu.TryLock() {
		return zero, ErrPushInFlight
	}
	defer s.pushMu.Unlock()

	log := s.logger.With().Str("collection", store.SoilDataRootKey).Logger()

	ids, err := s.gatherDirty(ctx, s.storages.SoilDataSyncRecords, siteIDs)
	if err != nil {
		return zero, err
	}
	if len(ids) == 0 {
		return models.NewSyncResults[models.SoilData, models.SyncFailureReason](), nil
	}

	data, err := s.storages.SoilData.ReadAll(ctx)
	if err != nil {
		return zero, fmt.Errorf("read soil data: %w", err)
	}

	revisions := s.soilState.CaptureRevisions(ids)

	req := models.SoilDataPushRequest{}
	for _, id := range ids {
		datum, ok := data[id]
		if !ok {
			// Dirty marker without content: recoverable anomaly, skip.
			log.Warn().Str("siteId", id).Msg("dirty site has no stored soil data")
			delete(revisions, id)
			continue
		}
		changes := DiffSoilData(s.soilState.LastSyncedData(id), datum.Content)
		req.Entries = append(req.Entries, models.SoilDataPushEntry{
			SiteID:     id,
			RevisionID: revisions[id],
			SoilData:   PushInputFromChanges(changes),
		})
	}
	if len(req.Entries) == 0 {
		return models.NewSyncResults[models.SoilData, models.SyncFailureReason](), nil
	}

	resp, err := s.adapter.PushSoilData(ctx, req)
	if err != nil {
		// Transport failure: no local mutation, safe to retry.
		return zero, fmt.Errorf("push soil data: %w", err)
	}

	results := models.NewSyncResults[models.SoilData, models.SyncFailureReason]()
	for _, entry := range resp.Entries {
		rev, ok := revisions[entry.SiteID]
		if !ok {
			log.Warn().Str("siteId", entry.SiteID).Msg("push response names a site absent from the request, ignoring")
			continue
		}
		switch {
		case entry.Result.SoilData != nil:
			results.Data[entry.SiteID] = models.SyncedValue[models.SoilData]{RevisionID: rev, Value: *entry.Result.SoilData}
		default:
			results.Errors[entry.SiteID] = models.SyncedValue[models.SyncFailureReason]{RevisionID: rev, Value: entry.Result.Reason}
		}
	}

	// Holding soilMu keeps the revision check and the durable write as one
	// step: an edit arriving now waits, then reads as a fresh revision.
	s.soilMu.Lock()
	fresh := s.soilState.ApplyResults(results, s.now())
	err = persistSynced(ctx, s.storages.SoilData, s.storages.SoilDataSyncRecords, fresh.Data)
	s.soilMu.Unlock()
	if err != nil {
		return zero, err
	}

	if fresh.HasErrors() {
		log.Info().Int("errors", len(fresh.Errors)).Msg("push finished with per-site rejections")
	}
	return fresh, nil
}

// PushSoilMetadata performs one push cycle for the metadata collection.
// Metadata carries no nested collections, so each entry is the site's full
// rated-matches list rather than a diff.
func (s *clientSyncService) PushSoilMetadata(ctx context.Context, siteIDs []string) (models.SyncResults[models.SoilMetadata, models.SyncFailureReason], error) {
	zero := models.SyncResults[models.SoilMetadata, models.SyncFailureReason]{}

	if !s.pushMu.TryLock() {
		return zero, ErrPushInFlight
	}
	defer s.pushMu.Unlock()

	log := s.logger.With().Str("collection", store.SoilMetadataRootKey).Logger()

	ids, err := s.gatherDirty(ctx, s.storages.SoilMetadataSyncRecords, siteIDs)
	if err != nil {
		return zero, err
	}
	if len(ids) == 0 {
		return models.NewSyncResults[models.SoilMetadata, models.SyncFailureReason](), nil
	}

	data, err := s.storages.SoilMetadata.ReadAll(ctx)
	if err != nil {
		return zero, fmt.Errorf("read soil metadata: %w", err)
	}

	revisions := s.metaState.CaptureRevisions(ids)

	req := models.SoilMetadataPushRequest{}
	for _, id := range ids {
		datum, ok := data[id]
		if !ok {
			log.Warn().Str("siteId", id).Msg("dirty site has no stored soil metadata")
			delete(revisions, id)
			continue
		}
		req.Entries = append(req.Entries, models.SoilMetadataPushEntry{
			SiteID:      id,
			RevisionID:  revisions[id],
			UserRatings: datum.Content.UserRatings,
		})
	}
	if len(req.Entries) == 0 {
		return models.NewSyncResults[models.SoilMetadata, models.SyncFailureReason](), nil
	}

	resp, err := s.adapter.PushSoilMetadata(ctx, req)
	if err != nil {
		return zero, fmt.Errorf("push soil metadata: %w", err)
	}

	results := models.NewSyncResults[models.SoilMetadata, models.SyncFailureReason]()
	for _, entry := range resp.Entries {
		rev, ok := revisions[entry.SiteID]
		if !ok {
			log.Warn().Str("siteId", entry.SiteID).Msg("push response names a site absent from the request, ignoring")
			continue
		}
		switch {
		case entry.Result.SoilMetadata != nil:
			results.Data[entry.SiteID] = models.SyncedValue[models.SoilMetadata]{RevisionID: rev, Value: *entry.Result.SoilMetadata}
		default:
			results.Errors[entry.SiteID] = models.SyncedValue[models.SyncFailureReason]{RevisionID: rev, Value: entry.Result.Reason}
		}
	}

	s.metaMu.Lock()
	fresh := s.metaState.ApplyResults(results, s.now())
	err = persistSynced(ctx, s.storages.SoilMetadata, s.storages.SoilMetadataSyncRecords, fresh.Data)
	s.metaMu.Unlock()
	if err != nil {
		return zero, err
	}

	if fresh.HasErrors() {
		log.Info().Int("errors", len(fresh.Errors)).Msg("push finished with per-site rejections")
	}
	return fresh, nil
}

func (s *clientSyncService) UnsyncedSiteIDs(ctx context.Context) ([]string, error) {
	soil, err := s.storages.SoilDataSyncRecords.DirtyIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dirty soil data ids: %w", err)
	}
	meta, err := s.storages.SoilMetadataSyncRecords.DirtyIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dirty soil metadata ids: %w", err)
	}

	seen := make(map[string]struct{}, len(soil)+len(meta))
	union := make([]string, 0, len(soil)+len(meta))
	for _, id := range append(soil, meta...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		union = append(union, id)
	}
	sort.Strings(union)
	return union, nil
}

// gatherDirty returns the dirty ids intersected with requested, sorted. A
// nil requested set means "everything dirty".
func (s *clientSyncService) gatherDirty(ctx context.Context, records store.SyncRecordRepository, requested []string) ([]string, error) {
	dirty, err := records.DirtyIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dirty ids: %w", err)
	}
	if requested == nil {
		return dirty, nil
	}

	wanted := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}

	ids := make([]string, 0, len(dirty))
	for _, id := range dirty {
		if _, ok := wanted[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// persistSynced stores the server's authoritative payload for each freshly
// confirmed site and flushes its sync record. The write is clean (not
// dirty): post-push state comes from the response, never from echoing the
// request.
func persistSynced[T any](ctx context.Context, repo store.LocalDataRepository[T], records store.SyncRecordRepository, data map[string]models.SyncedValue[T]) error {
	if len(data) == 0 {
		return nil
	}

	confirmed := make(map[string]T, len(data))
	ids := make([]string, 0, len(data))
	for id, value := range data {
		confirmed[id] = value.Value
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := repo.WriteAll(ctx, confirmed); err != nil {
		return fmt.Errorf("persist synced data: %w", err)
	}
	if err := records.Flush(ctx, ids); err != nil {
		return fmt.Errorf("flush sync records: %w", err)
	}
	return nil
}
