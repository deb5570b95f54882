package store

import (
	"context"
	"fmt"

	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/models"
)

// Root keys for the client-side key-value store. Each key holds the full
// document for one entity kind.
const (
	SoilDataRootKey     = "soilData"
	SoilMetadataRootKey = "soilMetadata"
	ProjectsRootKey     = "projects"
	SitesRootKey        = "sites"

	SoilDataSyncRecordsRootKey     = "soilDataSyncRecords"
	SoilMetadataSyncRecordsRootKey = "soilMetadataSyncRecords"
)

// ClientStorages groups all client-side repositories over the shared
// [KVStore]. Soil data and soil metadata each get a data repository plus a
// sync-record repository tracking their dirty ids; projects and sites are
// pull-only and carry no dirty tracking.
type ClientStorages struct {
	KV KVStore

	SoilData            LocalDataRepository[models.SoilData]
	SoilDataSyncRecords SyncRecordRepository

	SoilMetadata            LocalDataRepository[models.SoilMetadata]
	SoilMetadataSyncRecords SyncRecordRepository

	Projects LocalDataRepository[models.Project]
	Sites    LocalDataRepository[models.Site]
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [ClientDB.Migrate].
//  3. Constructs and returns a [ClientStorages] value with all repositories
//     wired to the shared key-value store.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientKV, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVStore(db, logger)

	return NewClientStoragesWithKV(kv, logger), nil
}

// NewClientStoragesWithKV wires all client repositories over an existing
// [KVStore]. Used directly by tests with an in-memory store.
func NewClientStoragesWithKV(kv KVStore, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		KV: kv,

		SoilData:            NewLocalDataRepository[models.SoilData](kv, SoilDataRootKey, logger),
		SoilDataSyncRecords: NewSyncRecordRepository(kv, SoilDataSyncRecordsRootKey, logger),

		SoilMetadata:            NewLocalDataRepository[models.SoilMetadata](kv, SoilMetadataRootKey, logger),
		SoilMetadataSyncRecords: NewSyncRecordRepository(kv, SoilMetadataSyncRecordsRootKey, logger),

		Projects: NewLocalDataRepository[models.Project](kv, ProjectsRootKey, logger),
		Sites:    NewLocalDataRepository[models.Site](kv, SitesRootKey, logger),
	}
}
