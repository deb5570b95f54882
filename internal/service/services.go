package service

import (
	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/store"
)

type Services struct {
	AuthService     AuthService
	SiteSyncService SiteSyncService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		SiteSyncService: NewSiteSyncService(storages.SiteRepository, storages.SoilDataRepository, logger),
	}
}
