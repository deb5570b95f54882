package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilstack/fieldsync/internal/service"
	"github.com/soilstack/fieldsync/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "expired-jwt").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer expired-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenForwardsUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, mockSync := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "valid-jwt").
		Return(models.Token{UserID: 42}, nil)

	// the user id extracted from the token reaches the service layer
	mockSync.EXPECT().
		BuildPullSnapshot(gomock.Any(), int64(42)).
		Return(models.PullResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"standard bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"scheme only", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
		{"no scheme", "abc.def.ghi", "", ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
