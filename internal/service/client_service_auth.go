package service

import (
	"context"
	"fmt"

	"github.com/soilstack/fieldsync/internal/adapter"
	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	state     *appstate.Monitor
	requester PullRequester
	logger    *logger.Logger
}

// NewClientAuthService wires authentication over the server adapter. A
// successful login records the user in the application-state hub and raises
// the pull-requested flag, since a fresh login implies the local snapshot is
// stale.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, state *appstate.Monitor, requester PullRequester, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		state:     state,
		requester: requester,
		logger:    log,
	}
}

func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.Token, error) {
	token, err := s.adapter.Register(ctx, user)
	if err != nil {
		return models.Token{}, fmt.Errorf("register: %w", err)
	}
	s.loggedIn(token)
	return token, nil
}

func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	token, err := s.adapter.Login(ctx, user)
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}
	s.loggedIn(token)
	return token, nil
}

func (s *clientAuthService) Logout() {
	s.adapter.SetToken("")
	s.state.ClearUser()
	s.logger.Info().Msg("logged out")
}

func (s *clientAuthService) loggedIn(token models.Token) {
	s.state.SetUser(token.UserID)
	s.requester.Request()
	s.logger.Info().Int64("userId", token.UserID).Msg("logged in")
}
