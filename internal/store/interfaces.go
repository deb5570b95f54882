package store

import (
	"context"

	"github.com/soilstack/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

type SiteRepository interface {
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)
	ListSites(ctx context.Context, userID int64) ([]models.Site, error)
	SiteOwner(ctx context.Context, siteID string) (int64, error)
	CreateSite(ctx context.Context, userID int64, site models.Site) (models.Site, error)
}

type SoilDataRepository interface {
	GetSoilData(ctx context.Context, siteID string) (models.SoilData, error)
	GetAllSoilData(ctx context.Context, userID int64) (map[string]models.SoilData, error)
	SaveSoilData(ctx context.Context, siteID string, data models.SoilData) error
	GetSoilMetadata(ctx context.Context, siteID string) (models.SoilMetadata, error)
	GetAllSoilMetadata(ctx context.Context, userID int64) (map[string]models.SoilMetadata, error)
	SaveSoilMetadata(ctx context.Context, siteID string, metadata models.SoilMetadata) error
}
