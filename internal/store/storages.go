package store

import (
	"context"
	"fmt"

	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	UserRepository     UserRepository
	SiteRepository     SiteRepository
	SoilDataRepository SoilDataRepository
}

// NewStorages initialises the server storage layer: it opens the PostgreSQL
// connection, runs pending schema migrations, and wires all repositories.
func NewStorages(cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SiteRepository:     NewSiteRepository(db, logger),
		SoilDataRepository: NewSoilDataRepository(db, logger),
	}, nil
}
