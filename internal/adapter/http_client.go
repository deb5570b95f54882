package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/soilstack/fieldsync/models"
)

// HTTPClientConfig holds the connection settings for the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter returns a [ServerAdapter] that talks to the fieldsync
// server over HTTP/REST. Zero-value config fields fall back to localhost and
// a 15 second request timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, user, "/api/auth/register")
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, user, "/api/auth/login")
}

func (h *httpServerAdapter) authenticate(ctx context.Context, user models.User, path string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) PushSoilData(ctx context.Context, req models.SoilDataPushRequest) (models.SoilDataPushResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/soil-data/push")
	if err != nil {
		return models.SoilDataPushResponse{}, fmt.Errorf("push soil data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SoilDataPushResponse{}, err
	}

	var out models.SoilDataPushResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SoilDataPushResponse{}, fmt.Errorf("decode push soil data response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) PushSoilMetadata(ctx context.Context, req models.SoilMetadataPushRequest) (models.SoilMetadataPushResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/soil-metadata/push")
	if err != nil {
		return models.SoilMetadataPushResponse{}, fmt.Errorf("push soil metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SoilMetadataPushResponse{}, err
	}

	var out models.SoilMetadataPushResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SoilMetadataPushResponse{}, fmt.Errorf("decode push soil metadata response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) PullUserData(ctx context.Context) (models.PullResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/sync/pull")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var out models.PullResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
