package store

import (
	"context"
	"encoding/json"

	"github.com/soilstack/fieldsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVStore is the durable document store backing all client-side state.
// Each root key holds a single JSON document: either an object keyed by
// record id, or an array.
//
// Reads of a missing root key return an empty value and a nil error.
type KVStore interface {
	GetMap(ctx context.Context, rootKey string) (map[string]json.RawMessage, error)
	SetMap(ctx context.Context, rootKey string, doc map[string]json.RawMessage) error
	GetArray(ctx context.Context, rootKey string) ([]json.RawMessage, error)
	SetArray(ctx context.Context, rootKey string, doc []json.RawMessage) error
}

// SyncRecordRepository tracks which records have local edits that have not
// yet reached the server.
type SyncRecordRepository interface {
	// MarkDirty upserts a sync record for every id and refreshes its
	// UpdatedAt timestamp, so repeated edits keep the newest edit time.
	MarkDirty(ctx context.Context, ids []string) error
	// ReadDirty returns all currently tracked sync records keyed by id.
	// Entries that cannot be decoded are skipped.
	ReadDirty(ctx context.Context) (map[string]models.SyncRecord, error)
	// DirtyIDs returns the tracked ids in lexicographic order.
	DirtyIDs(ctx context.Context) ([]string, error)
	// Flush removes the sync records for the given ids. Ids without a
	// record are ignored.
	Flush(ctx context.Context, ids []string) error
}
