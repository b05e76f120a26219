// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var errDisk = errors.New("disk I/O error")

func TestCacheRepository_CacheMemo_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newCacheRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO memos")).WillReturnError(errDisk)

	err := repo.CacheMemo(context.Background(), testMemo("m1", "a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, errDisk)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_GetAll_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newCacheRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content, tags")).WillReturnError(errDisk)

	memos, err := repo.GetAllCachedMemos(context.Background())
	assert.Nil(t, memos)
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Get_CorruptTags(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newCacheRepository(db, logger.Nop())

	rows := sqlmock.NewRows(memoColumns).
		AddRow("m1", "t", "c", "{not json", int64(0), int64(0), int64(1), false, false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content, tags")).
		WithArgs("m1").
		WillReturnRows(rows)

	memo, err := repo.GetCachedMemo(context.Background(), "m1")
	assert.Nil(t, memo)
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestCacheRepository_GetAll_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newCacheRepository(db, logger.Nop())

	rows := sqlmock.NewRows(memoColumns).
		AddRow("m1", "t", "c", "[]", int64(0), int64(0), int64(1), false, false).
		RowError(0, errDisk)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content, tags")).WillReturnRows(rows)

	_, err := repo.GetAllCachedMemos(context.Background())
	assert.ErrorIs(t, err, app.ErrStorage)
}

func TestOperationLog_Count_Error(t *testing.T) {
	db, mock := newTestDB(t)
	log := newOperationLog(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(countOperations)).WillReturnError(errDisk)

	_, err := log.Count(context.Background())
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestOperationLog_List_CorruptPayload(t *testing.T) {
	db, mock := newTestDB(t)
	log := newOperationLog(db, logger.Nop())

	rows := sqlmock.NewRows(operationColumns).
		AddRow("op1", "m1", "update", []byte("{broken"), int64(1), time.Now().UnixNano(), 0, "queued", "")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, entity_id, kind, payload")).WillReturnRows(rows)

	ops, err := log.List(context.Background())
	assert.Nil(t, ops)
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestOperationLog_Append_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	log := newOperationLog(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_operations")).WillReturnError(errDisk)

	op := models.NewDeleteOperation("m1", 2)
	op.ID, op.CreatedAt = "op1", time.Now()
	err := log.Append(context.Background(), op)
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestMetaRepository_CorruptWatermark(t *testing.T) {
	db, mock := newTestDB(t)
	meta := newMetaRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getMeta)).
		WithArgs(metaKeyLastSyncTime).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("yesterday"))

	last, err := meta.LastSyncTime(context.Background())
	assert.Nil(t, last)
	assert.ErrorIs(t, err, ErrEncodingRow)
}

func TestSQLiteStorage_Atomically_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewLocalStorage("unused", logger.Nop())
	s.db = &DB{DB: db, logger: logger.Nop()}

	mock.ExpectBegin().WillReturnError(errDisk)

	called := false
	err := s.Atomically(context.Background(), func(Tx) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.ErrorIs(t, err, app.ErrStorage)
}

func TestSQLiteStorage_ClearAll_RollsBackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewLocalStorage("unused", logger.Nop())
	s.db = &DB{DB: db, logger: logger.Nop()}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearOperations)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(clearMemos)).WillReturnError(errDisk)
	mock.ExpectRollback()

	err := s.ClearAll(context.Background())
	assert.ErrorIs(t, err, app.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newMockedStorage(t *testing.T) (*SQLiteStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	s := NewLocalStorage("mocked.db", logger.Nop())
	s.db = &DB{DB: db, logger: logger.Nop()}
	return s, mock
}

func TestSQLiteStorage_Atomically_RetriesLockedBegin(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := s.Atomically(context.Background(), func(Tx) error { return nil })

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Atomically_BeginNotRetried(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrIoErr})

	err := s.Atomically(context.Background(), func(Tx) error { return nil })

	assert.ErrorIs(t, err, app.ErrStorage)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}
