package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/soilstack/fieldsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL, Timeout: 5 * time.Second})
	return a.(*httpServerAdapter)
}

func signedTestToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject})
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

func TestLogin_Success(t *testing.T) {
	bearer := signedTestToken(t, "42")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)

		w.Header().Set("Authorization", "Bearer "+bearer)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, bearer, got.SignedString)
	assert.Equal(t, bearer, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_MissingBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bearer token")
}

func TestPushSoilData_Success(t *testing.T) {
	bedrock := 120
	want := models.SoilDataPushResponse{
		Entries: []models.SoilDataPushResponseEntry{
			{SiteID: "site-1", Result: models.SoilDataPushResult{SoilData: &models.SoilData{Bedrock: &bedrock}}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/soil-data/push", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req models.SoilDataPushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Entries, 1)
		assert.Equal(t, "site-1", req.Entries[0].SiteID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	got, err := a.PushSoilData(context.Background(), models.SoilDataPushRequest{
		Entries: []models.SoilDataPushEntry{{SiteID: "site-1", RevisionID: 3}},
	})

	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "site-1", got.Entries[0].SiteID)
	require.NotNil(t, got.Entries[0].Result.SoilData)
	assert.Equal(t, &bedrock, got.Entries[0].Result.SoilData.Bedrock)
}

func TestPushSoilData_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	_, err := a.PushSoilData(context.Background(), models.SoilDataPushRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestPushSoilMetadata_Success(t *testing.T) {
	rating := 2
	want := models.SoilMetadataPushResponse{
		Entries: []models.SoilMetadataPushResponseEntry{
			{SiteID: "site-1", Result: models.SoilMetadataPushResult{
				SoilMetadata: &models.SoilMetadata{UserRatings: []models.UserRating{{SoilMatchID: "m-1", Rating: &rating}}},
			}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/soil-metadata/push", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	got, err := a.PushSoilMetadata(context.Background(), models.SoilMetadataPushRequest{})

	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	require.NotNil(t, got.Entries[0].Result.SoilMetadata)
	assert.Equal(t, "m-1", got.Entries[0].Result.SoilMetadata.UserRatings[0].SoilMatchID)
}

func TestPullUserData_Success(t *testing.T) {
	want := models.PullResponse{
		Projects: map[string]models.Project{"p-1": {ID: "p-1", Name: "North Farm"}},
		Sites:    map[string]models.Site{"site-1": {ID: "site-1", ProjectID: "p-1", Name: "Field A"}},
		SoilData: map[string]models.SoilData{"site-1": {}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/pull", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	got, err := a.PullUserData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "North Farm", got.Projects["p-1"].Name)
	assert.Equal(t, "p-1", got.Sites["site-1"].ProjectID)
	assert.Contains(t, got.SoilData, "site-1")
}

func TestPullUserData_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PullUserData(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
