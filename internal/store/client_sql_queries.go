// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package store

const (
	getKVEntry = `
		SELECT doc
		FROM kv_entries
		WHERE root_key = $1;`

	upsertKVEntry = `
		INSERT INTO kv_entries (root_key, doc, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (root_key) DO UPDATE SET
			doc        = excluded.doc,
			updated_at = CURRENT_TIMESTAMP;`

	deleteKVEntry = `
		DELETE FROM kv_entries
		WHERE root_key = $1;`
)
