package service

import (
	"context"
	"fmt"

	"github.com/soilstack/fieldsync/models"
)

// Pull fetches the authoritative user snapshot and replaces the local
// caches. Projects and sites are server-owned and rewritten wholesale. Soil
// data and soil metadata are merged: entries with unpushed local edits keep
// their local content and stay dirty, everything else takes the pulled
// payload as its new synced baseline. An edit recorded while the pull RPC is
// in flight therefore survives and goes out with the next push.
//
// The caller is responsible for the eligibility gate.
func (s *clientSyncService) Pull(ctx context.Context) error {
	log := s.logger.With().Str("func", "Pull").Logger()

	resp, err := s.adapter.PullUserData(ctx)
	if err != nil {
		return fmt.Errorf("pull user data: %w", err)
	}

	projects := make(map[string]models.Project, len(resp.Projects))
	for _, project := range resp.Projects {
		projects[project.ID] = project
	}
	sites := make(map[string]models.Site, len(resp.Sites))
	for _, site := range resp.Sites {
		sites[site.ID] = site
	}

	if err := s.storages.Projects.ReplaceAll(ctx, projects); err != nil {
		return fmt.Errorf("store pulled projects: %w", err)
	}
	if err := s.storages.Sites.ReplaceAll(ctx, sites); err != nil {
		return fmt.Errorf("store pulled sites: %w", err)
	}

	s.soilMu.Lock()
	soilKept, err := s.storages.SoilData.MergeAuthoritative(ctx, resp.SoilData)
	if err == nil {
		s.soilState.MarkPulled(withoutIDs(resp.SoilData, soilKept), s.now())
	}
	s.soilMu.Unlock()
	if err != nil {
		return fmt.Errorf("store pulled soil data: %w", err)
	}

	s.metaMu.Lock()
	metaKept, err := s.storages.SoilMetadata.MergeAuthoritative(ctx, resp.SoilMetadata)
	if err == nil {
		s.metaState.MarkPulled(withoutIDs(resp.SoilMetadata, metaKept), s.now())
	}
	s.metaMu.Unlock()
	if err != nil {
		return fmt.Errorf("store pulled soil metadata: %w", err)
	}

	log.Info().
		Int("projects", len(resp.Projects)).
		Int("sites", len(resp.Sites)).
		Int("kept_dirty", len(soilKept)+len(metaKept)).
		Msg("pulled authoritative snapshot")
	return nil
}

// withoutIDs returns data minus the given ids. The input map is not
// modified.
func withoutIDs[T any](data map[string]T, ids []string) map[string]T {
	if len(ids) == 0 {
		return data
	}

	out := make(map[string]T, len(data))
	for id, value := range data {
		out[id] = value
	}
	for _, id := range ids {
		delete(out, id)
	}
	return out
}
