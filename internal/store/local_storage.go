// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/sethvargo/go-retry"
)

// A second client process may hold the write lock past the driver's busy
// timeout; BEGIN is retried a few times before giving up.
const (
	beginMaxRetries  = 3
	beginBackoffBase = 50 * time.Millisecond
)

// SQLiteStorage is the SQLite implementation of [LocalStorage].
//
// It may be constructed long before it is opened (for example before the
// user logs in). Until Open succeeds reads return empty results and writes
// fail with [ErrNotInitialized].
type SQLiteStorage struct {
	path       string
	classifier ErrorClassifier
	logger     *logger.Logger

	// mu guards db. Queries hold the read lock, so Close waits for them.
	mu sync.RWMutex
	db *DB
}

var _ LocalStorage = (*SQLiteStorage)(nil)

// NewLocalStorage returns an unopened storage for the database file at path.
func NewLocalStorage(path string, logger *logger.Logger) *SQLiteStorage {
	return &SQLiteStorage{path: path, classifier: NewSQLiteErrorClassifier(), logger: logger}
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

func (s *SQLiteStorage) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := NewConnectSQLite(ctx, s.path, s.logger)
	if err != nil {
		return storageError("open "+s.path, ErrNotInitialized, err)
	}

	if err := db.Migrate(); err != nil {
		s.logger.Err(err).Str("func", "SQLiteStorage.Open").Msg("migration failed")
		_ = db.Close()
		return storageError("migrate "+s.path, ErrNotInitialized, err)
	}

	// operations left in flight by a crash are delivered again and count
	// as one attempt
	res, err := db.ExecContext(ctx, requeueInFlightOperations)
	if err != nil {
		_ = db.Close()
		return storageError("requeue in-flight operations", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.logger.Warn().Str("func", "SQLiteStorage.Open").Int64("operations", n).Msg("requeued operations interrupted mid-delivery")
	}

	s.db = db
	s.logger.Info().Str("func", "SQLiteStorage.Open").Str("path", s.path).Msg("local storage opened")
	return nil
}

func (s *SQLiteStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closeLocked()
}

func (s *SQLiteStorage) closeLocked() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return storageError("close "+s.path, ErrExecutingStatement, err)
	}
	return nil
}

func (s *SQLiteStorage) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.closeLocked(); err != nil {
		return err
	}
	if err := removeDBFiles(s.path); err != nil {
		return storageError("remove "+s.path, ErrExecutingStatement, err)
	}
	s.logger.Info().Str("func", "SQLiteStorage.Destroy").Str("path", s.path).Msg("local storage destroyed")
	return nil
}

func (s *SQLiteStorage) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db != nil
}

// withDB runs fn with the open pool under the read lock. ok is false when
// the storage is not open.
func (s *SQLiteStorage) withDB(fn func(db *DB) error) (ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}
	return true, fn(s.db)
}

func (s *SQLiteStorage) GetCachedMemo(ctx context.Context, id string) (memo *models.CachedMemo, err error) {
	_, err = s.withDB(func(db *DB) error {
		memo, err = newCacheRepository(db, s.logger).GetCachedMemo(ctx, id)
		return err
	})
	return memo, err
}

func (s *SQLiteStorage) GetAllCachedMemos(ctx context.Context) ([]models.CachedMemo, error) {
	memos := make([]models.CachedMemo, 0)
	_, err := s.withDB(func(db *DB) error {
		var err error
		memos, err = newCacheRepository(db, s.logger).GetAllCachedMemos(ctx)
		return err
	})
	return memos, err
}

func (s *SQLiteStorage) CacheMemo(ctx context.Context, memo models.CachedMemo) error {
	return s.write("cache memo", func(db *DB) error {
		return newCacheRepository(db, s.logger).CacheMemo(ctx, memo)
	})
}

func (s *SQLiteStorage) DeleteCachedMemo(ctx context.Context, id string) error {
	return s.write("delete cached memo", func(db *DB) error {
		return newCacheRepository(db, s.logger).DeleteCachedMemo(ctx, id)
	})
}

func (s *SQLiteStorage) LastSyncTime(ctx context.Context) (t *time.Time, err error) {
	_, err = s.withDB(func(db *DB) error {
		t, err = newMetaRepository(db, s.logger).LastSyncTime(ctx)
		return err
	})
	return t, err
}

func (s *SQLiteStorage) SetLastSyncTime(ctx context.Context, t time.Time) error {
	return s.write("set last sync time", func(db *DB) error {
		return newMetaRepository(db, s.logger).SetLastSyncTime(ctx, t)
	})
}

// Operations returns the pending operation log. Its reads are empty and
// its writes fail while the storage is closed.
func (s *SQLiteStorage) Operations() OperationLog {
	return &storageOperationLog{s: s}
}

func (s *SQLiteStorage) Atomically(ctx context.Context, fn func(tx Tx) error) error {
	return s.write("transaction", func(db *DB) error {
		return s.inTx(ctx, db, func(tx *sqliteTx) error { return fn(tx) })
	})
}

func (s *SQLiteStorage) inTx(ctx context.Context, db *DB, fn func(tx *sqliteTx) error) error {
	sqlTx, err := s.begin(ctx, db)
	if err != nil {
		s.logger.Err(err).Str("func", "SQLiteStorage.inTx").Msg("failed to begin transaction")
		return storageError("begin", ErrBeginningTransaction, err)
	}

	if err := fn(&sqliteTx{tx: sqlTx, logger: s.logger}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "SQLiteStorage.inTx").Msg("failed to commit transaction")
		return storageError("commit", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *SQLiteStorage) begin(ctx context.Context, db *DB) (*sql.Tx, error) {
	var sqlTx *sql.Tx
	backoff := retry.WithMaxRetries(beginMaxRetries, retry.NewExponential(beginBackoffBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			if s.classifier.Classify(err) == Retryable {
				s.logger.Warn().Err(err).Str("func", "SQLiteStorage.begin").Msg("database is locked, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		sqlTx = tx
		return nil
	})
	return sqlTx, err
}

func (s *SQLiteStorage) ClearAll(ctx context.Context) error {
	return s.write("clear all", func(db *DB) error {
		return s.inTx(ctx, db, func(tx *sqliteTx) error {
			for _, stmt := range []string{clearOperations, clearMemos, clearMeta} {
				if _, err := tx.tx.ExecContext(ctx, stmt); err != nil {
					s.logger.Err(err).Str("func", "SQLiteStorage.ClearAll").Msg("failed to clear local storage")
					return storageError("clear all", ErrExecutingStatement, err)
				}
			}
			return nil
		})
	})
}

func (s *SQLiteStorage) GetStats(ctx context.Context) (models.CacheStats, error) {
	var stats models.CacheStats
	_, err := s.withDB(func(db *DB) error {
		query, args, err := selectStats()
		if err != nil {
			return storageError("get stats", ErrBuildingSQLQuery, err)
		}
		if err := db.QueryRowContext(ctx, query, args...).Scan(&stats.TotalMemos, &stats.TotalSize); err != nil {
			s.logger.Err(err).Str("func", "SQLiteStorage.GetStats").Msg("failed to aggregate cache stats")
			return storageError("get stats", ErrExecutingQuery, err)
		}
		stats.LastSyncTime, err = newMetaRepository(db, s.logger).LastSyncTime(ctx)
		return err
	})
	return stats, err
}

// write runs fn against the open pool or fails fast when closed.
func (s *SQLiteStorage) write(op string, fn func(db *DB) error) error {
	ok, err := s.withDB(fn)
	if !ok {
		return storageError(op, ErrNotInitialized, nil)
	}
	return err
}

type sqliteTx struct {
	tx     *sql.Tx
	logger *logger.Logger
}

func (t *sqliteTx) Cache() CacheRepository   { return newCacheRepository(t.tx, t.logger) }
func (t *sqliteTx) Operations() OperationLog { return newOperationLog(t.tx, t.logger) }
func (t *sqliteTx) Meta() MetaRepository     { return newMetaRepository(t.tx, t.logger) }

// storageOperationLog binds the operation log to the storage lifecycle.
type storageOperationLog struct {
	s *SQLiteStorage
}

func (l *storageOperationLog) log(db *DB) *operationLog {
	return newOperationLog(db, l.s.logger)
}

func (l *storageOperationLog) Append(ctx context.Context, op models.SyncOperation) error {
	return l.s.write("append operation", func(db *DB) error { return l.log(db).Append(ctx, op) })
}

func (l *storageOperationLog) List(ctx context.Context) ([]models.SyncOperation, error) {
	ops := make([]models.SyncOperation, 0)
	_, err := l.s.withDB(func(db *DB) error {
		var err error
		ops, err = l.log(db).List(ctx)
		return err
	})
	return ops, err
}

func (l *storageOperationLog) ListForEntity(ctx context.Context, entityID string) ([]models.SyncOperation, error) {
	ops := make([]models.SyncOperation, 0)
	_, err := l.s.withDB(func(db *DB) error {
		var err error
		ops, err = l.log(db).ListForEntity(ctx, entityID)
		return err
	})
	return ops, err
}

func (l *storageOperationLog) Update(ctx context.Context, op models.SyncOperation) error {
	return l.s.write("update operation", func(db *DB) error { return l.log(db).Update(ctx, op) })
}

func (l *storageOperationLog) Remove(ctx context.Context, id string) error {
	return l.s.write("remove operation", func(db *DB) error { return l.log(db).Remove(ctx, id) })
}

func (l *storageOperationLog) RemoveForEntity(ctx context.Context, entityID string) (n int, err error) {
	err = l.s.write("remove operations", func(db *DB) error {
		n, err = l.log(db).RemoveForEntity(ctx, entityID)
		return err
	})
	return n, err
}

func (l *storageOperationLog) Rebase(ctx context.Context, entityID string, baseVersion int64) error {
	return l.s.write("rebase operations", func(db *DB) error { return l.log(db).Rebase(ctx, entityID, baseVersion) })
}

func (l *storageOperationLog) Count(ctx context.Context) (n int, err error) {
	_, err = l.s.withDB(func(db *DB) error {
		n, err = l.log(db).Count(ctx)
		return err
	})
	return n, err
}
