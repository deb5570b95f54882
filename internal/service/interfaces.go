package service

import (
	"context"

	"github.com/soilstack/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SiteSyncService is the server side of the push/pull contract: it applies
// batched per-site pushes against the authenticated user's sites and builds
// the authoritative pull snapshot.
type SiteSyncService interface {
	// ApplySoilDataPush processes one soil data push batch. The response
	// carries exactly one entry per request entry; per-site rejections are
	// encoded as failure reasons, never as errors.
	ApplySoilDataPush(ctx context.Context, userID int64, req models.SoilDataPushRequest) (models.SoilDataPushResponse, error)

	// ApplySoilMetadataPush processes one soil metadata push batch with the
	// same per-entry semantics as ApplySoilDataPush.
	ApplySoilMetadataPush(ctx context.Context, userID int64, req models.SoilMetadataPushRequest) (models.SoilMetadataPushResponse, error)

	// BuildPullSnapshot returns everything the user can access: projects,
	// sites, and the per-site soil data and metadata documents.
	BuildPullSnapshot(ctx context.Context, userID int64) (models.PullResponse, error)

	// CreateSite registers a new site owned by the user.
	CreateSite(ctx context.Context, userID int64, site models.Site) (models.Site, error)
}
