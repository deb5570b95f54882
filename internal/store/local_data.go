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

// LocalDataRepository stores one entity kind's content on the device, each
// entry wrapped in a [models.LocalDatum] carrying its dirty flag and
// timestamps.
type LocalDataRepository[T any] interface {
	// Write records a local edit: the content is stored dirty with a fresh
	// WrittenAt timestamp.
	Write(ctx context.Context, id string, content T) error
	// WriteAll stores server-authoritative content for many ids at once,
	// merged over the existing entries. Entries are written clean with
	// SyncedAt set.
	WriteAll(ctx context.Context, data map[string]T) error
	// ReplaceAll discards every stored entry and writes data as the new
	// full content of the collection, clean with SyncedAt set.
	ReplaceAll(ctx context.Context, data map[string]T) error
	// MergeAuthoritative replaces the collection with data the way
	// ReplaceAll does, except entries whose dirty flag is set: those keep
	// their stored local content, so an unpushed edit survives a pull.
	// Returns the ids whose local entries were preserved, sorted.
	MergeAuthoritative(ctx context.Context, data map[string]T) ([]string, error)
	// ReadAll returns every stored datum keyed by id. Malformed entries are
	// skipped.
	ReadAll(ctx context.Context) (map[string]models.LocalDatum[T], error)
	// ReadDirty returns only the data whose dirty flag is set.
	ReadDirty(ctx context.Context) (map[string]models.LocalDatum[T], error)
	// MarkSynced clears the dirty flag and stamps SyncedAt for each id.
	// Ids with no stored datum are skipped with a logged anomaly; the rest
	// of the batch still completes.
	MarkSynced(ctx context.Context, ids []string) error
}

// localDataRepository is the [KVStore]-backed implementation of
// [LocalDataRepository]. All data for one entity kind lives under a single
// root key as a JSON object keyed by entity id.
type localDataRepository[T any] struct {
	kv      KVStore
	rootKey string
	logger  *logger.Logger
	now     func() time.Time
}

// NewLocalDataRepository constructs a [LocalDataRepository] for one entity
// kind stored under the given root key.
func NewLocalDataRepository[T any](kv KVStore, rootKey string, logger *logger.Logger) LocalDataRepository[T] {
	logger.Debug().Str("root_key", rootKey).Msg("creating local data repository")
	return &localDataRepository[T]{
		kv:      kv,
		rootKey: rootKey,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *localDataRepository[T]) Write(ctx context.Context, id string, content T) error {
	doc, err := r.kv.GetMap(ctx, r.rootKey)
	if err != nil {
		return fmt.Errorf("read local data: %w", err)
	}

	datum := models.LocalDatum[T]{
		IsDirty:   true,
		WrittenAt: r.now(),
		Content:   content,
	}
	// keep the previous synced timestamp if the entry already exists
	if prev, ok := doc[id]; ok {
		if prevDatum, valid := models.UnmarshalLocalDatum[T](prev); valid {
			datum.SyncedAt = prevDatum.SyncedAt
		}
	}

	raw, err := json.Marshal(datum)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	doc[id] = raw

	if err := r.kv.SetMap(ctx, r.rootKey, doc); err != nil {
		return fmt.Errorf("write local data: %w", err)
	}

	return nil
}

func (r *localDataRepository[T]) WriteAll(ctx context.Context, data map[string]T) error {
	if len(data) == 0 {
		return nil
	}

	doc, err := r.kv.GetMap(ctx, r.rootKey)
	if err != nil {
		return fmt.Errorf("read local data: %w", err)
	}

	return r.writeClean(ctx, doc, data)
}

func (r *localDataRepository[T]) ReplaceAll(ctx context.Context, data map[string]T) error {
	return r.writeClean(ctx, make(map[string]json.RawMessage, len(data)), data)
}

func (r *localDataRepository[T]) MergeAuthoritative(ctx context.Context, data map[string]T) ([]string, error) {
	doc, err := r.kv.GetMap(ctx, r.rootKey)
	if err != nil {
		return nil, fmt.Errorf("read local data: %w", err)
	}

	// carry over the entries with unpushed edits verbatim
	next := make(map[string]json.RawMessage, len(data))
	var kept []string
	for id, raw := range doc {
		if datum, ok := models.UnmarshalLocalDatum[T](raw); ok && datum.IsDirty {
			next[id] = raw
			kept = append(kept, id)
		}
	}

	now := r.now()
	for id, content := range data {
		if _, dirty := next[id]; dirty {
			continue
		}
		datum := models.LocalDatum[T]{
			IsDirty:   false,
			WrittenAt: now,
			SyncedAt:  &now,
			Content:   content,
		}
		raw, err := json.Marshal(datum)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		next[id] = raw
	}

	if err := r.kv.SetMap(ctx, r.rootKey, next); err != nil {
		return nil, fmt.Errorf("write local data: %w", err)
	}

	sort.Strings(kept)
	return kept, nil
}

// writeClean marshals data as clean synced entries into doc and persists it.
func (r *localDataRepository[T]) writeClean(ctx context.Context, doc map[string]json.RawMessage, data map[string]T) error {
	now := r.now()
	for id, content := range data {
		datum := models.LocalDatum[T]{
			IsDirty:   false,
			WrittenAt: now,
			SyncedAt:  &now,
			Content:   content,
		}
		raw, err := json.Marshal(datum)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		doc[id] = raw
	}

	if err := r.kv.SetMap(ctx, r.rootKey, doc); err != nil {
		return fmt.Errorf("write local data: %w", err)
	}

	return nil
}

func (r *localDataRepository[T]) ReadAll(ctx context.Context) (map[string]models.LocalDatum[T], error) {
	log := logger.FromContext(ctx)

	doc, err := r.kv.GetMap(ctx, r.rootKey)
	if err != nil {
		log.Err(err).
			Str("func", "localDataRepository.ReadAll").
			Str("root_key", r.rootKey).
			Msg("failed to read local data")
		return nil, fmt.Errorf("read local data: %w", err)
	}

	data := make(map[string]models.LocalDatum[T], len(doc))
	for id, raw := range doc {
		datum, ok := models.UnmarshalLocalDatum[T](raw)
		if !ok {
			log.Warn().
				Str("func", "localDataRepository.ReadAll").
				Str("root_key", r.rootKey).
				Str("id", id).
				Msg("dropping malformed local datum")
			continue
		}
		data[id] = datum
	}

	return data, nil
}

func (r *localDataRepository[T]) ReadDirty(ctx context.Context) (map[string]models.LocalDatum[T], error) {
	all, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	dirty := make(map[string]models.LocalDatum[T])
	for id, datum := range all {
		if datum.IsDirty {
			dirty[id] = datum
		}
	}

	return dirty, nil
}

func (r *localDataRepository[T]) MarkSynced(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	doc, err := r.kv.GetMap(ctx, r.rootKey)
	if err != nil {
		return fmt.Errorf("read local data: %w", err)
	}

	now := r.now()
	for _, id := range ids {
		raw, exists := doc[id]
		if !exists {
			log.Warn().
				Str("func", "localDataRepository.MarkSynced").
				Str("root_key", r.rootKey).
				Str("id", id).
				Msg("cannot mark missing datum as synced")
			continue
		}

		datum, ok := models.UnmarshalLocalDatum[T](raw)
		if !ok {
			log.Warn().
				Str("func", "localDataRepository.MarkSynced").
				Str("root_key", r.rootKey).
				Str("id", id).
				Msg("cannot mark malformed datum as synced")
			continue
		}

		datum.IsDirty = false
		datum.SyncedAt = &now

		updated, err := json.Marshal(datum)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		doc[id] = updated
	}

	if err := r.kv.SetMap(ctx, r.rootKey, doc); err != nil {
		return fmt.Errorf("write local data: %w", err)
	}

	return nil
}
