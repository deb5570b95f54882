package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/mock"
	"github.com/soilstack/fieldsync/models"
)

func newTestClientAuth(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter, *appstate.Monitor, PullRequester) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	state := appstate.NewMonitor()
	requester := NewPullRequester(logger.Nop())

	svc := NewClientAuthService(mockAdapter, state, requester, logger.Nop())
	return svc, mockAdapter, state, requester
}

func TestClientAuth_Login_RecordsUserAndRequestsPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, state, requester := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	user := models.User{Login: "agronomist", Password: "secret"}
	mockAdapter.EXPECT().Login(ctx, user).Return(models.Token{SignedString: "jwt", UserID: 42}, nil)

	token, err := svc.Login(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)

	assert.True(t, state.Snapshot().LoggedIn())
	assert.Equal(t, int64(42), state.Snapshot().UserID)
	assert.True(t, requester.Requested())
}

func TestClientAuth_Login_FailureLeavesStateLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, state, requester := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	wantErr := errors.New("invalid credentials")
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, wantErr)

	_, err := svc.Login(ctx, models.User{Login: "agronomist", Password: "wrong"})
	require.ErrorIs(t, err, wantErr)

	assert.False(t, state.Snapshot().LoggedIn())
	assert.False(t, requester.Requested())
}

func TestClientAuth_Register_RecordsUserAndRequestsPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, state, requester := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	user := models.User{Login: "agronomist", Password: "secret"}
	mockAdapter.EXPECT().Register(ctx, user).Return(models.Token{SignedString: "jwt", UserID: 7}, nil)

	_, err := svc.Register(ctx, user)
	require.NoError(t, err)

	assert.Equal(t, int64(7), state.Snapshot().UserID)
	assert.True(t, requester.Requested())
}

func TestClientAuth_Logout_ClearsTokenAndUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, state, _ := newTestClientAuth(t, ctrl)

	state.SetUser(42)
	mockAdapter.EXPECT().SetToken("")

	svc.Logout()

	assert.False(t, state.Snapshot().LoggedIn())
}
