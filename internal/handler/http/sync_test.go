// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilstack/fieldsync/internal/service"
	"github.com/soilstack/fieldsync/internal/store"
	"github.com/soilstack/fieldsync/models"
)

func TestPushSoilData_AppliesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)

	mockSync.EXPECT().
		ApplySoilDataPush(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req models.SoilDataPushRequest) (models.SoilDataPushResponse, error) {
			require.Len(t, req.Entries, 1)
			assert.Equal(t, "site-a", req.Entries[0].SiteID)
			assert.Equal(t, models.RevisionID(3), req.Entries[0].RevisionID)
			return models.SoilDataPushResponse{
				Entries: []models.SoilDataPushResponseEntry{
					{SiteID: "site-a", Result: models.SoilDataPushResult{Reason: models.FailureNotAllowed}},
				},
			}, nil
		})

	body := `{"soilDataEntries":[{"siteId":"site-a","revisionId":3,"soilData":{"fieldUpdates":{"bedrock":12}}}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sync/soil-data/push", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SoilDataPushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, models.FailureNotAllowed, resp.Entries[0].Result.Reason)
}

func TestPushSoilData_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/soil-data/push", strings.NewReader("{broken"))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushSoilData_StorageFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)
	mockSync.EXPECT().
		ApplySoilDataPush(gomock.Any(), int64(42), gomock.Any()).
		Return(models.SoilDataPushResponse{}, fmt.Errorf("save soil data: %w", store.ErrExecutingStatement))

	req := httptest.NewRequest(http.MethodPost, "/api/sync/soil-data/push", strings.NewReader(`{"soilDataEntries":[]}`))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPushSoilData_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)
	mockSync.EXPECT().
		ApplySoilDataPush(gomock.Any(), int64(42), gomock.Any()).
		Return(models.SoilDataPushResponse{}, fmt.Errorf("load soil data: %w", store.ErrStorageUnavailable))

	req := httptest.NewRequest(http.MethodPost, "/api/sync/soil-data/push", strings.NewReader(`{"soilDataEntries":[]}`))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushSoilMetadata_AppliesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)

	stored := models.SoilMetadata{UserRatings: []models.UserRating{{SoilMatchID: "match-1"}}}
	mockSync.EXPECT().
		ApplySoilMetadataPush(gomock.Any(), int64(42), gomock.Any()).
		Return(models.SoilMetadataPushResponse{
			Entries: []models.SoilMetadataPushResponseEntry{
				{SiteID: "site-a", Result: models.SoilMetadataPushResult{SoilMetadata: &stored}},
			},
		}, nil)

	body := `{"soilMetadataEntries":[{"siteId":"site-a","revisionId":1,"userRatings":[{"soilMatchId":"match-1","rating":1}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sync/soil-metadata/push", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SoilMetadataPushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	require.NotNil(t, resp.Entries[0].Result.SoilMetadata)
}

func TestPull_ReturnsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)
	mockSync.EXPECT().
		BuildPullSnapshot(gomock.Any(), int64(42)).
		Return(models.PullResponse{
			Projects: []models.Project{{ID: "proj-1", Name: "North Fields"}},
			Sites:    []models.Site{{ID: "site-a", Name: "Plot A"}},
			SoilData: map[string]models.SoilData{"site-a": {}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "North Fields", resp.Projects[0].Name)
	assert.Contains(t, resp.SoilData, "site-a")
}

func TestCreateSite_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)
	mockSync.EXPECT().
		CreateSite(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, site models.Site) (models.Site, error) {
			site.ID = "site-new"
			return site, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/sites", strings.NewReader(`{"name":"Plot A","latitude":48.2,"longitude":16.4}`))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "site-new", created.ID)
}

func TestCreateSite_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").Return(models.Token{UserID: 42}, nil)
	mockSync.EXPECT().
		CreateSite(gomock.Any(), int64(42), gomock.Any()).
		Return(models.Site{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/sites", strings.NewReader(`{"name":""}`))
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
