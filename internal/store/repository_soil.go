package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/models"
)

const (
	soilDataTable     = "soil_data"
	soilMetadataTable = "soil_metadata"
)

// soilDataRepository is the PostgreSQL-backed implementation of
// [SoilDataRepository]. Soil data and soil metadata are stored as one JSONB
// document per site, which keeps the server schema stable while the nested
// observation shapes evolve.
type soilDataRepository struct {
	*DB
	logger *logger.Logger
}

// NewSoilDataRepository constructs a [SoilDataRepository] backed by the
// provided database connection and logger.
func NewSoilDataRepository(db *DB, logger *logger.Logger) SoilDataRepository {
	logger.Debug().Msg("creating soil data repository")
	return &soilDataRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *soilDataRepository) GetSoilData(ctx context.Context, siteID string) (models.SoilData, error) {
	var data models.SoilData
	if err := r.getDoc(ctx, soilDataTable, siteID, &data); err != nil {
		return models.SoilData{}, err
	}
	return data, nil
}

func (r *soilDataRepository) GetAllSoilData(ctx context.Context, userID int64) (map[string]models.SoilData, error) {
	docs, err := r.listDocs(ctx, soilDataTable, userID)
	if err != nil {
		return nil, err
	}

	data := make(map[string]models.SoilData, len(docs))
	for siteID, raw := range docs {
		var d models.SoilData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		data[siteID] = d
	}

	return data, nil
}

func (r *soilDataRepository) SaveSoilData(ctx context.Context, siteID string, data models.SoilData) error {
	return r.saveDoc(ctx, soilDataTable, siteID, data)
}

func (r *soilDataRepository) GetSoilMetadata(ctx context.Context, siteID string) (models.SoilMetadata, error) {
	var metadata models.SoilMetadata
	if err := r.getDoc(ctx, soilMetadataTable, siteID, &metadata); err != nil {
		return models.SoilMetadata{}, err
	}
	return metadata, nil
}

func (r *soilDataRepository) GetAllSoilMetadata(ctx context.Context, userID int64) (map[string]models.SoilMetadata, error) {
	docs, err := r.listDocs(ctx, soilMetadataTable, userID)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]models.SoilMetadata, len(docs))
	for siteID, raw := range docs {
		var m models.SoilMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		metadata[siteID] = m
	}

	return metadata, nil
}

func (r *soilDataRepository) SaveSoilMetadata(ctx context.Context, siteID string, metadata models.SoilMetadata) error {
	return r.saveDoc(ctx, soilMetadataTable, siteID, metadata)
}

// getDoc reads one site's document from the given table into dst.
// A missing row leaves dst at its zero value, matching a site that has no
// recorded observations yet.
func (r *soilDataRepository) getDoc(ctx context.Context, table, siteID string, dst any) error {
	log := logger.FromContext(ctx)

	var raw []byte
	row := r.DB.QueryRowContext(ctx, fmt.Sprintf(getSoilDoc, table), siteID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		log.Err(err).
			Str("func", "soilDataRepository.getDoc").
			Str("table", table).
			Str("site_id", siteID).
			Msg("failed to read soil document")
		return r.wrapDBError(ErrExecutingQuery, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		log.Err(err).
			Str("func", "soilDataRepository.getDoc").
			Str("table", table).
			Str("site_id", siteID).
			Msg("failed to decode soil document")
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return nil
}

func (r *soilDataRepository) listDocs(ctx context.Context, table string, userID int64) (map[string]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSoilDocsQuery(table, userID)
	if err != nil {
		log.Err(err).
			Str("func", "soilDataRepository.listDocs").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "soilDataRepository.listDocs").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to execute query for listing soil documents")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make(map[string]json.RawMessage, 25)
	for rows.Next() {
		var siteID string
		var raw []byte
		if scanErr := rows.Scan(&siteID, &raw); scanErr != nil {
			log.Err(scanErr).
				Str("func", "soilDataRepository.listDocs").
				Str("table", table).
				Int64("user_id", userID).
				Msg("failed to scan soil document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		docs[siteID] = raw
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "soilDataRepository.listDocs").
			Str("table", table).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

func (r *soilDataRepository) saveDoc(ctx context.Context, table, siteID string, doc any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	result, err := r.DB.ExecContext(ctx, fmt.Sprintf(upsertSoilDoc, table), siteID, payload)
	if err != nil {
		log.Err(err).
			Str("func", "soilDataRepository.saveDoc").
			Str("table", table).
			Str("site_id", siteID).
			Msg("failed to upsert soil document")
		return r.wrapDBError(ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "soilDataRepository.saveDoc").
			Str("table", table).
			Str("site_id", siteID).
			Msg("soil document was not saved")
		return ErrSoilDataNotSaved
	}

	return nil
}
