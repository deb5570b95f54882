package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/migrations"
)

// ClientDB is the sqlite connection backing the client-side key-value store.
type ClientDB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectSQLite(ctx context.Context, cfg config.ClientKV, log *logger.Logger) (*ClientDB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &ClientDB{
		DB:     conn,
		logger: log,
	}, nil
}

func (db *ClientDB) Migrate() error {
	return migrations.MigrateClient(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// kvSQLiteStore is the sqlite-backed implementation of [KVStore]. Every root
// key maps to a single row in the kv_entries table whose doc column holds the
// serialized JSON document.
type kvSQLiteStore struct {
	db     *ClientDB
	logger *logger.Logger
}

// NewKVStore constructs a [KVStore] backed by the provided sqlite connection.
func NewKVStore(db *ClientDB, logger *logger.Logger) KVStore {
	logger.Debug().Msg("creating key-value store")
	return &kvSQLiteStore{
		db:     db,
		logger: logger,
	}
}

func (s *kvSQLiteStore) GetMap(ctx context.Context, rootKey string) (map[string]json.RawMessage, error) {
	raw, err := s.getDoc(ctx, rootKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]json.RawMessage{}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "kvSQLiteStore.GetMap").
			Str("root_key", rootKey).
			Msg("stored document is not a JSON object")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}

	return doc, nil
}

func (s *kvSQLiteStore) SetMap(ctx context.Context, rootKey string, doc map[string]json.RawMessage) error {
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}
	return s.setDoc(ctx, rootKey, doc)
}

func (s *kvSQLiteStore) GetArray(ctx context.Context, rootKey string) ([]json.RawMessage, error) {
	raw, err := s.getDoc(ctx, rootKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []json.RawMessage{}, nil
	}

	var doc []json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "kvSQLiteStore.GetArray").
			Str("root_key", rootKey).
			Msg("stored document is not a JSON array")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return doc, nil
}

func (s *kvSQLiteStore) SetArray(ctx context.Context, rootKey string, doc []json.RawMessage) error {
	if doc == nil {
		doc = []json.RawMessage{}
	}
	return s.setDoc(ctx, rootKey, doc)
}

func (s *kvSQLiteStore) getDoc(ctx context.Context, rootKey string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	var raw []byte
	row := s.db.QueryRowContext(ctx, getKVEntry, rootKey)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// missing root key reads as an empty document
			return nil, nil
		}
		log.Err(err).
			Str("func", "kvSQLiteStore.getDoc").
			Str("root_key", rootKey).
			Msg("failed to read document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return raw, nil
}

func (s *kvSQLiteStore) setDoc(ctx context.Context, rootKey string, doc any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(doc)
	if err != nil {
		log.Err(err).
			Str("func", "kvSQLiteStore.setDoc").
			Str("root_key", rootKey).
			Msg("failed to encode document")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	if _, err := s.db.ExecContext(ctx, upsertKVEntry, rootKey, payload); err != nil {
		log.Err(err).
			Str("func", "kvSQLiteStore.setDoc").
			Str("root_key", rootKey).
			Msg("failed to write document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
