// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
)

type metaRepository struct {
	q      querier
	logger *logger.Logger
}

func newMetaRepository(q querier, logger *logger.Logger) *metaRepository {
	return &metaRepository{q: q, logger: logger}
}

func (r *metaRepository) LastSyncTime(ctx context.Context) (*time.Time, error) {
	var raw string
	err := r.q.QueryRowContext(ctx, getMeta, metaKeyLastSyncTime).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "metaRepository.LastSyncTime").
			Msg("failed to read last sync time")
		return nil, storageError("read last sync time", ErrExecutingQuery, err)
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, storageError("read last sync time", ErrEncodingRow, err)
	}
	return &t, nil
}

func (r *metaRepository) SetLastSyncTime(ctx context.Context, t time.Time) error {
	if _, err := r.q.ExecContext(ctx, upsertMeta, metaKeyLastSyncTime, t.UTC().Format(time.RFC3339Nano)); err != nil {
		r.logger.Err(err).
			Str("func", "metaRepository.SetLastSyncTime").
			Time("last_sync_time", t).
			Msg("failed to store last sync time")
		return storageError("store last sync time", ErrExecutingStatement, err)
	}
	return nil
}
