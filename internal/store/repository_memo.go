// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/models"
)

type cacheRepository struct {
	q      querier
	logger *logger.Logger
}

func newCacheRepository(q querier, logger *logger.Logger) *cacheRepository {
	return &cacheRepository{q: q, logger: logger}
}

func (r *cacheRepository) GetCachedMemo(ctx context.Context, id string) (*models.CachedMemo, error) {
	query, args, err := selectMemos(id)
	if err != nil {
		return nil, storageError("get cached memo", ErrBuildingSQLQuery, err)
	}

	memo, err := scanMemo(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.GetCachedMemo").
			Str("id", id).
			Msg("failed to read cached memo")
		return nil, storageError("get cached memo", ErrScanningRow, err)
	}

	return &memo, nil
}

func (r *cacheRepository) GetAllCachedMemos(ctx context.Context) ([]models.CachedMemo, error) {
	query, args, err := selectMemos("")
	if err != nil {
		return nil, storageError("get all cached memos", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.GetAllCachedMemos").
			Msg("failed to execute query for getting all cached memos")
		return nil, storageError("get all cached memos", ErrExecutingQuery, err)
	}
	defer rows.Close()

	memos := make([]models.CachedMemo, 0)
	for rows.Next() {
		memo, scanErr := scanMemo(rows)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "cacheRepository.GetAllCachedMemos").
				Msg("failed to scan cached memo row")
			return nil, storageError("get all cached memos", ErrScanningRow, scanErr)
		}
		memos = append(memos, memo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logger.Err(rowsErr).
			Str("func", "cacheRepository.GetAllCachedMemos").
			Msg("error occurred during rows iteration")
		return nil, storageError("get all cached memos", ErrScanningRow, rowsErr)
	}

	return memos, nil
}

func (r *cacheRepository) CacheMemo(ctx context.Context, memo models.CachedMemo) error {
	if memo.ID == "" {
		return storageError("cache memo", ErrEncodingRow, errors.New("empty memo id"))
	}

	tags, err := encodeTags(memo.Tags)
	if err != nil {
		return storageError("cache memo", ErrEncodingRow, err)
	}

	_, err = r.q.ExecContext(ctx, upsertMemo,
		memo.ID,
		memo.Title,
		memo.Content,
		tags,
		toUnixNano(memo.UpdatedAt),
		toUnixNano(memo.LocalUpdatedAt),
		memo.SyncVersion,
		memo.Dirty,
		memo.PendingDelete,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.CacheMemo").
			Str("id", memo.ID).
			Msg("failed to execute upsert for cached memo")
		return storageError("cache memo "+memo.ID, ErrExecutingStatement, err)
	}

	return nil
}

func (r *cacheRepository) DeleteCachedMemo(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, deleteMemo, id); err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.DeleteCachedMemo").
			Str("id", id).
			Msg("failed to delete cached memo")
		return storageError("delete cached memo "+id, ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemo(row rowScanner) (models.CachedMemo, error) {
	var (
		memo                     models.CachedMemo
		tags                     string
		updatedAt, localUpdateAt int64
	)

	err := row.Scan(
		&memo.ID,
		&memo.Title,
		&memo.Content,
		&tags,
		&updatedAt,
		&localUpdateAt,
		&memo.SyncVersion,
		&memo.Dirty,
		&memo.PendingDelete,
	)
	if err != nil {
		return models.CachedMemo{}, err
	}

	if memo.Tags, err = decodeTags(tags); err != nil {
		return models.CachedMemo{}, err
	}
	memo.UpdatedAt = fromUnixNano(updatedAt)
	memo.LocalUpdatedAt = fromUnixNano(localUpdateAt)

	return memo, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// toUnixNano stores the zero time as 0.
func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
