// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/models"
)

// syncRecordRepository is the [KVStore]-backed implementation of
// [SyncRecordRepository]. The dirty set for one entity kind lives under a
// single root key as a JSON array of records, ordered by id.
type syncRecordRepository struct {
	kv      KVStore
	rootKey string
	logger  *logger.Logger
	now     func() time.Time
}

// NewSyncRecordRepository constructs a [SyncRecordRepository] that tracks
// dirty ids under the given root key.
func NewSyncRecordRepository(kv KVStore, rootKey string, logger *logger.Logger) SyncRecordRepository {
	logger.Debug().Str("root_key", rootKey).Msg("creating sync record repository")
	return &syncRecordRepository{
		kv:      kv,
		rootKey: rootKey,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *syncRecordRepository) MarkDirty(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	records, err := r.read(ctx)
	if err != nil {
		return err
	}

	now := r.now()
	for _, id := range ids {
		record, exists := records[id]
		if !exists {
			record = models.SyncRecord{ID: id, CreatedAt: now}
		}
		record.UpdatedAt = now
		records[id] = record
	}

	log.Debug().
		Str("func", "syncRecordRepository.MarkDirty").
		Str("root_key", r.rootKey).
		Int("marked", len(ids)).
		Int("dirty_total", len(records)).
		Msg("marked records dirty")

	return r.write(ctx, records)
}

func (r *syncRecordRepository) ReadDirty(ctx context.Context) (map[string]models.SyncRecord, error) {
	return r.read(ctx)
}

func (r *syncRecordRepository) DirtyIDs(ctx context.Context) ([]string, error) {
	records, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

func (r *syncRecordRepository) Flush(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	records, err := r.read(ctx)
	if err != nil {
		return err
	}

	flushed := 0
	for _, id := range ids {
		if _, exists := records[id]; exists {
			delete(records, id)
			flushed++
		}
	}

	log.Debug().
		Str("func", "syncRecordRepository.Flush").
		Str("root_key", r.rootKey).
		Int("flushed", flushed).
		Int("dirty_total", len(records)).
		Msg("flushed sync records")

	return r.write(ctx, records)
}

// read decodes the dirty set, silently dropping entries that are malformed
// or structurally invalid. A corrupt dirty marker is recoverable by treating
// the id as clean, so decode failures are logged but not surfaced.
func (r *syncRecordRepository) read(ctx context.Context) (map[string]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	doc, err := r.kv.GetArray(ctx, r.rootKey)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordRepository.read").
			Str("root_key", r.rootKey).
			Msg("failed to read sync records")
		return nil, fmt.Errorf("read sync records: %w", err)
	}

	records := make(map[string]models.SyncRecord, len(doc))
	for _, raw := range doc {
		var record models.SyncRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			log.Warn().
				Str("func", "syncRecordRepository.read").
				Str("root_key", r.rootKey).
				Msg("dropping malformed sync record")
			continue
		}
		if !record.Valid() {
			log.Warn().
				Str("func", "syncRecordRepository.read").
				Str("root_key", r.rootKey).
				Str("id", record.ID).
				Msg("dropping invalid sync record")
			continue
		}
		records[record.ID] = record
	}

	return records, nil
}

func (r *syncRecordRepository) write(ctx context.Context, records map[string]models.SyncRecord) error {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	doc := make([]json.RawMessage, 0, len(records))
	for _, id := range ids {
		raw, err := json.Marshal(records[id])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		doc = append(doc, raw)
	}

	if err := r.kv.SetArray(ctx, r.rootKey, doc); err != nil {
		return fmt.Errorf("write sync records: %w", err)
	}

	return nil
}
