// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/models"
)

type operationLog struct {
	q      querier
	logger *logger.Logger
}

func newOperationLog(q querier, logger *logger.Logger) *operationLog {
	return &operationLog{q: q, logger: logger}
}

func (l *operationLog) Append(ctx context.Context, op models.SyncOperation) error {
	if op.ID == "" || op.EntityID == "" || op.CreatedAt.IsZero() {
		return storageError("append operation", ErrInvalidOperation, fmt.Errorf("id, entity id and created at are required"))
	}
	if err := op.CheckPayload(); err != nil {
		return storageError("append operation", ErrInvalidOperation, err)
	}
	if op.State == "" {
		op.State = models.StateQueued
	}
	if !op.State.Persisted() {
		return storageError("append operation", ErrInvalidOperation, fmt.Errorf("state %q is not stored", op.State))
	}

	payload, err := models.EncodePayload(op.Payload)
	if err != nil {
		return storageError("append operation", ErrEncodingRow, err)
	}

	_, err = l.q.ExecContext(ctx, insertOperation,
		op.ID,
		op.EntityID,
		op.Kind,
		payload,
		op.BaseVersion,
		toUnixNano(op.CreatedAt),
		op.Attempts,
		op.State,
		op.LastError,
	)
	if err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.Append").
			Str("operation_id", op.ID).
			Str("entity_id", op.EntityID).
			Msg("failed to insert pending operation")
		return storageError("append operation "+op.ID, ErrExecutingStatement, err)
	}

	return nil
}

func (l *operationLog) List(ctx context.Context) ([]models.SyncOperation, error) {
	return l.list(ctx, "")
}

func (l *operationLog) ListForEntity(ctx context.Context, entityID string) ([]models.SyncOperation, error) {
	return l.list(ctx, entityID)
}

func (l *operationLog) list(ctx context.Context, entityID string) ([]models.SyncOperation, error) {
	query, args, err := selectOperations(entityID)
	if err != nil {
		return nil, storageError("list operations", ErrBuildingSQLQuery, err)
	}

	rows, err := l.q.QueryContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.list").
			Str("entity_id", entityID).
			Msg("failed to execute query for pending operations")
		return nil, storageError("list operations", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ops := make([]models.SyncOperation, 0)
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			l.logger.Err(scanErr).
				Str("func", "operationLog.list").
				Msg("failed to scan pending operation row")
			return nil, storageError("list operations", ErrScanningRow, scanErr)
		}
		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, storageError("list operations", ErrScanningRow, rowsErr)
	}

	return ops, nil
}

func (l *operationLog) Update(ctx context.Context, op models.SyncOperation) error {
	if !op.State.Persisted() {
		return storageError("update operation", ErrInvalidOperation, fmt.Errorf("state %q is not stored", op.State))
	}

	res, err := l.q.ExecContext(ctx, updateOperation, op.BaseVersion, op.Attempts, op.State, op.LastError, op.ID)
	if err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.Update").
			Str("operation_id", op.ID).
			Msg("failed to update pending operation")
		return storageError("update operation "+op.ID, ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storageError("update operation "+op.ID, ErrOperationNotFound, nil)
	}

	return nil
}

func (l *operationLog) Remove(ctx context.Context, id string) error {
	if _, err := l.q.ExecContext(ctx, deleteOperation, id); err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.Remove").
			Str("operation_id", id).
			Msg("failed to remove pending operation")
		return storageError("remove operation "+id, ErrExecutingStatement, err)
	}
	return nil
}

func (l *operationLog) RemoveForEntity(ctx context.Context, entityID string) (int, error) {
	res, err := l.q.ExecContext(ctx, deleteEntityOperations, entityID)
	if err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.RemoveForEntity").
			Str("entity_id", entityID).
			Msg("failed to remove pending operations of entity")
		return 0, storageError("remove operations of "+entityID, ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError("remove operations of "+entityID, ErrExecutingStatement, err)
	}
	return int(n), nil
}

func (l *operationLog) Rebase(ctx context.Context, entityID string, baseVersion int64) error {
	if _, err := l.q.ExecContext(ctx, rebaseEntityOperations, baseVersion, entityID); err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.Rebase").
			Str("entity_id", entityID).
			Int64("base_version", baseVersion).
			Msg("failed to rebase pending operations")
		return storageError("rebase operations of "+entityID, ErrExecutingStatement, err)
	}
	return nil
}

func (l *operationLog) Count(ctx context.Context) (int, error) {
	var n int
	if err := l.q.QueryRowContext(ctx, countOperations).Scan(&n); err != nil {
		l.logger.Err(err).
			Str("func", "operationLog.Count").
			Msg("failed to count pending operations")
		return 0, storageError("count operations", ErrExecutingQuery, err)
	}
	return n, nil
}

func scanOperation(row rowScanner) (models.SyncOperation, error) {
	var (
		op        models.SyncOperation
		payload   []byte
		createdAt int64
	)

	err := row.Scan(
		&op.ID,
		&op.EntityID,
		&op.Kind,
		&payload,
		&op.BaseVersion,
		&createdAt,
		&op.Attempts,
		&op.State,
		&op.LastError,
	)
	if err != nil {
		return models.SyncOperation{}, err
	}

	if op.Payload, err = models.DecodePayload(op.Kind, payload); err != nil {
		return models.SyncOperation{}, err
	}
	op.CreatedAt = fromUnixNano(createdAt)

	return op, nil
}
