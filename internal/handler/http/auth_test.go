package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/mock"
	"github.com/soilstack/fieldsync/internal/service"
	"github.com/soilstack/fieldsync/internal/store"
	"github.com/soilstack/fieldsync/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockSiteSyncService) {
	t.Helper()

	mockAuth := mock.NewMockAuthService(ctrl)
	mockSync := mock.NewMockSiteSyncService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:     mockAuth,
		SiteSyncService: mockSync,
	}, logger.Nop())
	return h, mockAuth, mockSync
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 42, Login: "agronomist"}, nil)
	mockAuth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"agronomist","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestRegister_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"agronomist","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":""}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 42, Login: "agronomist"}, nil)
	mockAuth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"agronomist","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	tests := []struct {
		name string
		err  error
	}{
		{"unknown user", store.ErrNoUserWasFound},
		{"wrong password", service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"agronomist","password":"nope"}`))
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
