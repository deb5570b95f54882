// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/store"
	"github.com/soilstack/fieldsync/models"
)

// siteSyncService applies push batches and builds pull snapshots. Each push
// entry is processed independently: ownership and validation failures turn
// into per-site failure reasons, and the response always carries exactly one
// entry per request entry in request order.
type siteSyncService struct {
	sites store.SiteRepository
	soil  store.SoilDataRepository

	logger *logger.Logger
}

// NewSiteSyncService wires the push/pull contract over the site and soil
// repositories.
func NewSiteSyncService(sites store.SiteRepository, soil store.SoilDataRepository, log *logger.Logger) SiteSyncService {
	return &siteSyncService{
		sites:  sites,
		soil:   soil,
		logger: log,
	}
}

func (s *siteSyncService) ApplySoilDataPush(ctx context.Context, userID int64, req models.SoilDataPushRequest) (models.SoilDataPushResponse, error) {
	log := logger.FromContext(ctx)

	resp := models.SoilDataPushResponse{
		Entries: make([]models.SoilDataPushResponseEntry, 0, len(req.Entries)),
	}

	for _, entry := range req.Entries {
		result, err := s.applySoilDataEntry(ctx, userID, entry)
		if err != nil {
			return models.SoilDataPushResponse{}, err
		}
		if result.Reason != "" {
			log.Info().
				Str("siteId", entry.SiteID).
				Str("reason", string(result.Reason)).
				Msg("soil data push entry rejected")
		}
		resp.Entries = append(resp.Entries, models.SoilDataPushResponseEntry{
			SiteID: entry.SiteID,
			Result: result,
		})
	}

	return resp, nil
}

// applySoilDataEntry processes one push entry. Rejections come back as a
// result carrying a failure reason; only storage faults return an error.
func (s *siteSyncService) applySoilDataEntry(ctx context.Context, userID int64, entry models.SoilDataPushEntry) (models.SoilDataPushResult, error) {
	reason, ok, err := s.authorizeSite(ctx, userID, entry.SiteID)
	if err != nil {
		return models.SoilDataPushResult{}, err
	}
	if !ok {
		return models.SoilDataPushResult{Reason: reason}, nil
	}
	if err := validateSoilDataInput(entry.SoilData); err != nil {
		return models.SoilDataPushResult{Reason: models.FailureInvalidData}, nil
	}

	stored, err := s.soil.GetSoilData(ctx, entry.SiteID)
	if err != nil {
		return models.SoilDataPushResult{}, fmt.Errorf("load soil data for site %s: %w", entry.SiteID, err)
	}

	updated, err := applySoilDataInput(stored, entry.SoilData)
	if err != nil {
		// The updates decoded but do not fit the document shape.
		return models.SoilDataPushResult{Reason: models.FailureInvalidData}, nil
	}

	if err := s.soil.SaveSoilData(ctx, entry.SiteID, updated); err != nil {
		return models.SoilDataPushResult{}, fmt.Errorf("save soil data for site %s: %w", entry.SiteID, err)
	}

	return models.SoilDataPushResult{SoilData: &updated}, nil
}

func (s *siteSyncService) ApplySoilMetadataPush(ctx context.Context, userID int64, req models.SoilMetadataPushRequest) (models.SoilMetadataPushResponse, error) {
	log := logger.FromContext(ctx)

	resp := models.SoilMetadataPushResponse{
		Entries: make([]models.SoilMetadataPushResponseEntry, 0, len(req.Entries)),
	}

	for _, entry := range req.Entries {
		result, err := s.applySoilMetadataEntry(ctx, userID, entry)
		if err != nil {
			return models.SoilMetadataPushResponse{}, err
		}
		if result.Reason != "" {
			log.Info().
				Str("siteId", entry.SiteID).
				Str("reason", string(result.Reason)).
				Msg("soil metadata push entry rejected")
		}
		resp.Entries = append(resp.Entries, models.SoilMetadataPushResponseEntry{
			SiteID: entry.SiteID,
			Result: result,
		})
	}

	return resp, nil
}

func (s *siteSyncService) applySoilMetadataEntry(ctx context.Context, userID int64, entry models.SoilMetadataPushEntry) (models.SoilMetadataPushResult, error) {
	reason, ok, err := s.authorizeSite(ctx, userID, entry.SiteID)
	if err != nil {
		return models.SoilMetadataPushResult{}, err
	}
	if !ok {
		return models.SoilMetadataPushResult{Reason: reason}, nil
	}
	if err := validateUserRatings(entry.UserRatings); err != nil {
		return models.SoilMetadataPushResult{Reason: models.FailureInvalidData}, nil
	}

	// Metadata has no nested collections: the pushed ratings list replaces
	// the stored one wholesale.
	updated := models.SoilMetadata{UserRatings: entry.UserRatings}
	sort.Slice(updated.UserRatings, func(i, j int) bool {
		return updated.UserRatings[i].SoilMatchID < updated.UserRatings[j].SoilMatchID
	})

	if err := s.soil.SaveSoilMetadata(ctx, entry.SiteID, updated); err != nil {
		return models.SoilMetadataPushResult{}, fmt.Errorf("save soil metadata for site %s: %w", entry.SiteID, err)
	}

	return models.SoilMetadataPushResult{SoilMetadata: &updated}, nil
}

func (s *siteSyncService) BuildPullSnapshot(ctx context.Context, userID int64) (models.PullResponse, error) {
	projects, err := s.sites.ListProjects(ctx, userID)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("list projects: %w", err)
	}
	sites, err := s.sites.ListSites(ctx, userID)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("list sites: %w", err)
	}
	soilData, err := s.soil.GetAllSoilData(ctx, userID)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("list soil data: %w", err)
	}
	soilMetadata, err := s.soil.GetAllSoilMetadata(ctx, userID)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("list soil metadata: %w", err)
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	sort.Slice(sites, func(i, j int) bool { return sites[i].ID < sites[j].ID })

	return models.PullResponse{
		Projects:     projects,
		Sites:        sites,
		SoilData:     soilData,
		SoilMetadata: soilMetadata,
	}, nil
}

// CreateSite registers a new site owned by userID, assigning a fresh id when
// the client did not provide one.
func (s *siteSyncService) CreateSite(ctx context.Context, userID int64, site models.Site) (models.Site, error) {
	if site.Name == "" {
		return models.Site{}, ErrInvalidDataProvided
	}
	if site.ID == "" {
		site.ID = uuid.NewString()
	}

	created, err := s.sites.CreateSite(ctx, userID, site)
	if err != nil {
		return models.Site{}, fmt.Errorf("create site: %w", err)
	}
	return created, nil
}

// authorizeSite resolves the failure reason for an entry whose site is
// unknown or owned by someone else. A storage fault is not an entry-level
// rejection and comes back as an error for the batch to propagate.
func (s *siteSyncService) authorizeSite(ctx context.Context, userID int64, siteID string) (models.SyncFailureReason, bool, error) {
	owner, err := s.sites.SiteOwner(ctx, siteID)
	switch {
	case errors.Is(err, store.ErrSiteNotFound):
		return models.FailureDoesNotExist, false, nil
	case err != nil:
		s.logger.Err(err).Str("siteId", siteID).Msg("site ownership lookup failed")
		return "", false, fmt.Errorf("resolve owner of site %s: %w", siteID, err)
	case owner != userID:
		return models.FailureNotAllowed, false, nil
	}
	return "", true, nil
}

// applySoilDataInput merges a push input onto the stored document: scalar
// field updates first, then per-interval updates and deletions keyed by the
// canonical interval bounds. Interval slices come back sorted so repeated
// pushes of the same input produce identical documents.
func applySoilDataInput(stored models.SoilData, input models.SoilDataPushInput) (models.SoilData, error) {
	updated := stored

	if len(input.FieldUpdates) > 0 {
		if err := mergeFields(&updated, input.FieldUpdates); err != nil {
			return models.SoilData{}, err
		}
	}

	deleted := make(map[string]struct{}, len(input.DeletedDepthIntervals))
	for _, interval := range input.DeletedDepthIntervals {
		deleted[interval.Key()] = struct{}{}
	}

	intervals := make([]models.SoilDataDepthInterval, 0, len(updated.DepthIntervals))
	for _, interval := range updated.DepthIntervals {
		if _, gone := deleted[interval.DepthInterval.Key()]; !gone {
			intervals = append(intervals, interval)
		}
	}
	updated.DepthIntervals = intervals

	for _, change := range input.DepthIntervals {
		idx := -1
		for i, interval := range updated.DepthIntervals {
			if interval.DepthInterval.Key() == change.DepthInterval.Key() {
				idx = i
				break
			}
		}
		if idx < 0 {
			updated.DepthIntervals = append(updated.DepthIntervals, models.SoilDataDepthInterval{DepthInterval: change.DepthInterval})
			idx = len(updated.DepthIntervals) - 1
		}
		if err := mergeFields(&updated.DepthIntervals[idx], change.FieldUpdates); err != nil {
			return models.SoilData{}, err
		}
	}
	sort.Slice(updated.DepthIntervals, func(i, j int) bool {
		return lessInterval(updated.DepthIntervals[i].DepthInterval, updated.DepthIntervals[j].DepthInterval)
	})

	for _, change := range input.DepthDependentData {
		idx := -1
		for i, data := range updated.DepthDependentData {
			if data.DepthInterval.Key() == change.DepthInterval.Key() {
				idx = i
				break
			}
		}
		if idx < 0 {
			updated.DepthDependentData = append(updated.DepthDependentData, models.DepthDependentSoilData{DepthInterval: change.DepthInterval})
			idx = len(updated.DepthDependentData) - 1
		}
		if err := mergeFields(&updated.DepthDependentData[idx], change.FieldUpdates); err != nil {
			return models.SoilData{}, err
		}
	}
	sort.Slice(updated.DepthDependentData, func(i, j int) bool {
		return lessInterval(updated.DepthDependentData[i].DepthInterval, updated.DepthDependentData[j].DepthInterval)
	})

	return updated, nil
}

func lessInterval(a, b models.DepthInterval) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// mergeFields overlays a wire-named update map onto target through a JSON
// round trip. Decoding is strict: an update naming an unknown field or
// carrying a value of the wrong type fails rather than being dropped.
func mergeFields[T any](target *T, updates map[string]any) error {
	raw, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	doc := make(map[string]any)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	for field, value := range updates {
		doc[field] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode merged document: %w", err)
	}

	var out T
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return fmt.Errorf("apply field updates: %w", err)
	}

	*target = out
	return nil
}
