// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	upsertMemo = `
		INSERT INTO memos (
			id,
			title,
			content,
			tags,
			updated_at,
			local_updated_at,
			sync_version,
			dirty,
			pending_delete
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title            = excluded.title,
			content          = excluded.content,
			tags             = excluded.tags,
			updated_at       = excluded.updated_at,
			local_updated_at = excluded.local_updated_at,
			sync_version     = excluded.sync_version,
			dirty            = excluded.dirty,
			pending_delete   = excluded.pending_delete;`

	deleteMemo = `DELETE FROM memos WHERE id = ?;`

	insertOperation = `
		INSERT INTO pending_operations (
			id,
			entity_id,
			kind,
			payload,
			base_version,
			created_at,
			attempts,
			state,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	updateOperation = `
		UPDATE pending_operations
		SET base_version = ?, attempts = ?, state = ?, last_error = ?
		WHERE id = ?;`

	deleteOperation = `DELETE FROM pending_operations WHERE id = ?;`

	deleteEntityOperations = `DELETE FROM pending_operations WHERE entity_id = ?;`

	rebaseEntityOperations = `UPDATE pending_operations SET base_version = ? WHERE entity_id = ?;`

	requeueInFlightOperations = `UPDATE pending_operations SET state = 'queued', attempts = attempts + 1 WHERE state = 'in_flight';`

	countOperations = `SELECT COUNT(*) FROM pending_operations;`

	getMeta    = `SELECT value FROM sync_meta WHERE key = ?;`
	upsertMeta = `
		INSERT INTO sync_meta (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	clearMemos      = `DELETE FROM memos;`
	clearOperations = `DELETE FROM pending_operations;`
	clearMeta       = `DELETE FROM sync_meta;`
)

const metaKeyLastSyncTime = "last_sync_time"

var (
	memoColumns = []string{
		"id",
		"title",
		"content",
		"tags",
		"updated_at",
		"local_updated_at",
		"sync_version",
		"dirty",
		"pending_delete",
	}

	operationColumns = []string{
		"id",
		"entity_id",
		"kind",
		"payload",
		"base_version",
		"created_at",
		"attempts",
		"state",
		"last_error",
	}
)

// selectMemos builds a memo SELECT, optionally filtered by id.
func selectMemos(id string) (string, []any, error) {
	q := sq.Select(memoColumns...).From("memos")
	if id != "" {
		q = q.Where(sq.Eq{"id": id})
	}
	return q.ToSql()
}

// selectOperations builds a log-ordered SELECT of pending operations,
// optionally restricted to one entity.
func selectOperations(entityID string) (string, []any, error) {
	q := sq.Select(operationColumns...).
		From("pending_operations").
		OrderBy("created_at ASC", "seq ASC")
	if entityID != "" {
		q = q.Where(sq.Eq{"entity_id": entityID})
	}
	return q.ToSql()
}

// selectStats builds the cache aggregate query. Tombstones are not
// counted; size is the byte length of the user-visible fields.
func selectStats() (string, []any, error) {
	return sq.Select(
		"COUNT(*)",
		"COALESCE(SUM(LENGTH(CAST(title AS BLOB)) + LENGTH(CAST(content AS BLOB)) + LENGTH(CAST(tags AS BLOB))), 0)",
	).
		From("memos").
		Where(sq.Eq{"pending_delete": false}).
		ToSql()
}
