// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/adapter"
	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/internal/validators"
	"github.com/MKhiriev/go-memo-sync/models"
	"golang.org/x/sync/singleflight"
)

const syncFlightKey = "sync"

type clientSyncService struct {
	localStore store.LocalStorage
	adapter    adapter.ServerAdapter
	monitor    network.Monitor
	resolver   ConflictResolver
	locks      *utils.KeyedMutex
	validator  validators.Validator
	ids        *utils.UUIDGenerator

	callTimeout time.Duration

	flight   singleflight.Group
	pass     chan struct{}
	inFlight atomic.Bool

	scopeMu sync.Mutex
	scope   *passScope
	gen     uint64

	now    func() time.Time
	logger *logger.Logger
}

// NewClientSyncService creates the sync engine. locks must be shared with
// the conflict resolver and the local editor. Every remote call is bounded
// by callTimeout and is not cut short when the pass is abandoned.
func NewClientSyncService(
	localStore store.LocalStorage,
	serverAdapter adapter.ServerAdapter,
	monitor network.Monitor,
	resolver ConflictResolver,
	locks *utils.KeyedMutex,
	callTimeout time.Duration,
	logger *logger.Logger,
) SyncService {
	return &clientSyncService{
		localStore:  localStore,
		adapter:     serverAdapter,
		monitor:     monitor,
		resolver:    resolver,
		locks:       locks,
		validator:   validators.NewOperationValidator(),
		ids:         utils.NewUUIDGenerator(),
		callTimeout: callTimeout,
		pass:        make(chan struct{}, 1),
		now:         time.Now,
		logger:      logger,
	}
}

// syncPass accumulates the outcome of one reconciliation pass.
type syncPass struct {
	result models.SyncResult

	offline         bool
	transportFailed bool
	storageFailed   bool
	abandoned       bool

	blocked   map[string]bool
	conflicts map[string]int
}

func (p *syncPass) addConflict(rec models.ConflictRecord) {
	if i, ok := p.conflicts[rec.EntityID]; ok {
		p.result.Conflicts[i] = rec
		return
	}
	p.conflicts[rec.EntityID] = len(p.result.Conflicts)
	p.result.Conflicts = append(p.result.Conflicts, rec)
}

func (p *syncPass) addError(e models.SyncError) {
	p.result.Errors = append(p.result.Errors, e)
}

// passScope is the context a shared pass runs on. It is cancelled once
// every caller that joined the pass has left.
type passScope struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	key     string
	waiters int
}

func (s *clientSyncService) Sync(ctx context.Context) (models.SyncResult, error) {
	scope := s.join(ctx)

	ch := s.flight.DoChan(scope.key, func() (any, error) {
		return s.runExclusive(scope.ctx)
	})

	select {
	case res := <-ch:
		s.leave(scope, nil)
		if res.Shared {
			s.logger.Debug().Str("func", "clientSyncService.Sync").Msg("joined sync pass already in flight")
		}
		result, _ := res.Val.(models.SyncResult)
		return result, res.Err
	case <-ctx.Done():
		s.leave(scope, ctx.Err())
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrSyncAbandoned, ctx.Err())
	}
}

func (s *clientSyncService) join(ctx context.Context) *passScope {
	s.scopeMu.Lock()
	defer s.scopeMu.Unlock()

	if s.scope == nil {
		s.gen++
		passCtx, cancel := context.WithCancelCause(context.WithoutCancel(ctx))
		s.scope = &passScope{
			ctx:    passCtx,
			cancel: cancel,
			key:    fmt.Sprintf("%s-%d", syncFlightKey, s.gen),
		}
	}
	s.scope.waiters++
	return s.scope
}

// leave drops one caller from scope. The last one out cancels the pass
// with cause; callers arriving later start a new scope.
func (s *clientSyncService) leave(scope *passScope, cause error) {
	s.scopeMu.Lock()
	defer s.scopeMu.Unlock()

	scope.waiters--
	if scope.waiters > 0 {
		return
	}
	scope.cancel(cause)
	if s.scope == scope {
		s.scope = nil
	}
}

func (s *clientSyncService) Quiesce(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case s.pass <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.pass }()

	return fn(ctx)
}

func (s *clientSyncService) runExclusive(ctx context.Context) (models.SyncResult, error) {
	select {
	case s.pass <- struct{}{}:
	case <-ctx.Done():
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrSyncAbandoned, ctx.Err())
	}
	defer func() { <-s.pass }()

	s.inFlight.Store(true)
	defer s.inFlight.Store(false)

	return s.runPass(ctx)
}

func (s *clientSyncService) runPass(ctx context.Context) (models.SyncResult, error) {
	p := &syncPass{
		result: models.SyncResult{
			StartedAt: s.now().UTC(),
			Conflicts: []models.ConflictRecord{},
			Errors:    []models.SyncError{},
		},
		blocked:   make(map[string]bool),
		conflicts: make(map[string]int),
	}
	trigger := utils.GetSyncTriggerFromContext(ctx)

	switch {
	case !s.monitor.IsOnline():
		p.offline = true
		p.addError(passError(app.ErrOffline))
	case !s.localStore.IsInitialized():
		p.storageFailed = true
		p.addError(passError(fmt.Errorf("%w: %s", app.ErrStorage, app.MsgStorageUnavailable)))
	default:
		err := s.drain(ctx, p)
		if err == nil && !p.abandoned {
			err = s.pull(ctx, p)
		}
		if err != nil {
			s.logger.Err(err).Str("func", "clientSyncService.runPass").Msg("sync pass aborted by storage failure")
			p.storageFailed = true
			p.addError(passError(err))
		}
	}

	p.result.Success = !p.offline && !p.transportFailed && !p.storageFailed && !p.abandoned
	p.result.FinishedAt = s.now().UTC()

	s.logger.Info().
		Str("func", "clientSyncService.runPass").
		Str("trigger", trigger).
		Bool("success", p.result.Success).
		Int("synced", p.result.Synced).
		Int("conflicts", len(p.result.Conflicts)).
		Int("errors", len(p.result.Errors)).
		Dur("took", p.result.FinishedAt.Sub(p.result.StartedAt)).
		Msg("sync pass finished")

	if p.abandoned {
		return p.result, fmt.Errorf("%w: %w", ErrSyncAbandoned, context.Cause(ctx))
	}
	return p.result, nil
}

// drain pushes the pending operations oldest-first. A returned error is a
// storage failure that aborts the pass.
func (s *clientSyncService) drain(ctx context.Context, p *syncPass) error {
	ops, err := s.localStore.Operations().List(ctx)
	if err != nil {
		return fmt.Errorf("list pending operations: %w", err)
	}

	for _, op := range ops {
		if ctx.Err() != nil {
			p.abandoned = true
			return nil
		}
		if p.blocked[op.EntityID] {
			continue
		}
		if s.resolver.HasConflict(op.EntityID) {
			p.blocked[op.EntityID] = true
			continue
		}
		if err = s.pushOperation(ctx, p, op.EntityID, op.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *clientSyncService) pushOperation(ctx context.Context, p *syncPass, entityID, opID string) error {
	unlock := s.locks.Lock(entityID)
	defer unlock()

	// the snapshot taken by drain may be stale: earlier acks rebase later
	// operations, and the resolver may have replaced them
	entityOps, err := s.localStore.Operations().ListForEntity(ctx, entityID)
	if err != nil {
		return fmt.Errorf("list operations of %s: %w", entityID, err)
	}
	if len(entityOps) == 0 || entityOps[0].ID != opID {
		return nil
	}
	op := entityOps[0]

	if err = op.Apply(models.EventSend, nil); err != nil {
		return fmt.Errorf("%w: operation %s: %w", app.ErrStorage, op.ID, err)
	}
	if err = s.localStore.Operations().Update(ctx, op); err != nil {
		return fmt.Errorf("mark operation %s in flight: %w", op.ID, err)
	}

	// from here on the request may reach the server; local bookkeeping
	// must finish even if the pass is abandoned
	local := context.WithoutCancel(ctx)

	remote, pushErr := s.push(ctx, op)

	switch mapPushError(op.Kind, pushErr) {
	case pushAcked:
		return s.ack(local, p, op, remote)
	case pushConflict:
		return s.reconcilePush(local, p, op, pushErr)
	case pushPermanent:
		return s.drop(local, p, op, pushErr)
	default:
		return s.retryLater(local, p, op, pushErr)
	}
}

// push sends op to the server. remote is nil for deletes.
func (s *clientSyncService) push(ctx context.Context, op models.SyncOperation) (*models.Memo, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	switch payload := op.Payload.(type) {
	case models.CreatePayload:
		memo, err := s.adapter.CreateMemo(callCtx, op.EntityID, payload)
		return &memo, err
	case models.UpdatePayload:
		memo, err := s.adapter.UpdateMemo(callCtx, op.EntityID, op.BaseVersion, payload)
		return &memo, err
	case models.DeletePayload:
		return nil, s.adapter.DeleteMemo(callCtx, op.EntityID, op.BaseVersion)
	}
	return nil, fmt.Errorf("%w: %w", app.ErrValidation, op.CheckPayload())
}

// ack removes op, rebases the later operations of the memo onto the new
// server version and marks the cache clean once nothing else is pending.
func (s *clientSyncService) ack(ctx context.Context, p *syncPass, op models.SyncOperation, remote *models.Memo) error {
	if err := op.Apply(models.EventAck, nil); err != nil {
		return fmt.Errorf("%w: operation %s: %w", app.ErrStorage, op.ID, err)
	}

	err := s.localStore.Atomically(ctx, func(tx store.Tx) error {
		if err := tx.Operations().Remove(ctx, op.ID); err != nil {
			return err
		}
		remaining, err := tx.Operations().ListForEntity(ctx, op.EntityID)
		if err != nil {
			return err
		}
		cached, err := tx.Cache().GetCachedMemo(ctx, op.EntityID)
		if err != nil {
			return err
		}

		if op.Kind == models.OperationDelete {
			if len(remaining) == 0 {
				return tx.Cache().DeleteCachedMemo(ctx, op.EntityID)
			}
			if err = tx.Operations().Rebase(ctx, op.EntityID, 0); err != nil {
				return err
			}
			if cached == nil {
				return nil
			}
			cached.SyncVersion = 0
			return tx.Cache().CacheMemo(ctx, *cached)
		}

		if len(remaining) == 0 {
			return tx.Cache().CacheMemo(ctx, remote.ToCached())
		}
		if err = tx.Operations().Rebase(ctx, op.EntityID, remote.Version); err != nil {
			return err
		}
		if cached == nil {
			return nil
		}
		cached.SyncVersion = remote.Version
		cached.UpdatedAt = remote.UpdatedAt
		return tx.Cache().CacheMemo(ctx, *cached)
	})
	if err != nil {
		return fmt.Errorf("acknowledge operation %s: %w", op.ID, err)
	}

	p.result.Synced++

	s.logger.Debug().
		Str("func", "clientSyncService.ack").
		Str("operation_id", op.ID).
		Str("entity_id", op.EntityID).
		Str("kind", string(op.Kind)).
		Msg("operation acknowledged")
	return nil
}

// retryLater requeues op after a transient failure and skips the rest of
// the memo's operations for this pass.
func (s *clientSyncService) retryLater(ctx context.Context, p *syncPass, op models.SyncOperation, cause error) error {
	if err := op.Apply(models.EventTransientFailure, cause); err != nil {
		return fmt.Errorf("%w: operation %s: %w", app.ErrStorage, op.ID, err)
	}
	if err := s.localStore.Operations().Update(ctx, op); err != nil {
		return fmt.Errorf("requeue operation %s: %w", op.ID, err)
	}

	p.blocked[op.EntityID] = true
	p.transportFailed = true
	p.addError(syncError(op, models.FailureTransient, cause))

	s.logger.Warn().
		Err(cause).
		Str("func", "clientSyncService.retryLater").
		Str("operation_id", op.ID).
		Str("entity_id", op.EntityID).
		Int("attempts", op.Attempts).
		Msg("operation requeued after transient failure")
	return nil
}

// drop removes an operation the server can never accept and reports it.
func (s *clientSyncService) drop(ctx context.Context, p *syncPass, op models.SyncOperation, cause error) error {
	if err := op.Apply(models.EventPermanentFailure, cause); err != nil {
		return fmt.Errorf("%w: operation %s: %w", app.ErrStorage, op.ID, err)
	}
	if err := s.localStore.Operations().Remove(ctx, op.ID); err != nil {
		return fmt.Errorf("drop operation %s: %w", op.ID, err)
	}

	p.addError(syncError(op, models.FailurePermanent, cause))

	s.logger.Warn().
		Err(cause).
		Str("func", "clientSyncService.drop").
		Str("operation_id", op.ID).
		Str("entity_id", op.EntityID).
		Msg("operation rejected by server and dropped")

	return s.repair(ctx, op.EntityID)
}

// repair replaces the cached memo with the server copy once the last
// pending operation of the memo was dropped. A memo the server does not
// have keeps its local content and is marked clean at version 0. When the
// server copy cannot be fetched the memo is marked clean at its current
// version.
func (s *clientSyncService) repair(ctx context.Context, entityID string) error {
	remaining, err := s.localStore.Operations().ListForEntity(ctx, entityID)
	if err != nil {
		return fmt.Errorf("list operations of %s: %w", entityID, err)
	}
	if len(remaining) > 0 {
		return nil
	}

	remote, err := s.fetchRemote(ctx, entityID)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.repair").Str("entity_id", entityID).Msg("could not fetch server copy")
		return s.markClean(ctx, entityID, false)
	}
	if remote == nil {
		return s.markClean(ctx, entityID, true)
	}

	if err = s.localStore.CacheMemo(ctx, remote.ToCached()); err != nil {
		return fmt.Errorf("repair cached memo %s: %w", entityID, err)
	}
	return nil
}

// markClean clears the dirty flags of a memo left without pending
// operations. unsynced also resets its version to 0.
func (s *clientSyncService) markClean(ctx context.Context, entityID string, unsynced bool) error {
	cached, err := s.localStore.GetCachedMemo(ctx, entityID)
	if err != nil {
		return fmt.Errorf("get cached memo %s: %w", entityID, err)
	}
	if cached == nil {
		return nil
	}

	cached.Dirty = false
	cached.PendingDelete = false
	if cached.LocalUpdatedAt.After(cached.UpdatedAt) {
		cached.UpdatedAt = cached.LocalUpdatedAt
	}
	if unsynced {
		cached.SyncVersion = 0
	}
	if err = s.localStore.CacheMemo(ctx, *cached); err != nil {
		return fmt.Errorf("mark cached memo %s clean: %w", entityID, err)
	}
	return nil
}

// reconcilePush handles a push the server refused because its copy moved
// on: fetch that copy and run conflict detection against it.
func (s *clientSyncService) reconcilePush(ctx context.Context, p *syncPass, op models.SyncOperation, cause error) error {
	remote, err := s.fetchRemote(ctx, op.EntityID)
	if err != nil {
		return s.retryLater(ctx, p, op, err)
	}

	entityOps, err := s.localStore.Operations().ListForEntity(ctx, op.EntityID)
	if err != nil {
		return fmt.Errorf("list operations of %s: %w", op.EntityID, err)
	}
	cached, err := s.localStore.GetCachedMemo(ctx, op.EntityID)
	if err != nil {
		return fmt.Errorf("get cached memo %s: %w", op.EntityID, err)
	}

	rec, conflict := s.resolver.Detect(entityOps, cached, remote)
	switch {
	case conflict:
		if err = op.Apply(models.EventRequeue, nil); err != nil {
			return fmt.Errorf("%w: operation %s: %w", app.ErrStorage, op.ID, err)
		}
		if err = s.localStore.Operations().Update(ctx, op); err != nil {
			return fmt.Errorf("requeue operation %s: %w", op.ID, err)
		}
		s.resolver.Record(rec)
		p.addConflict(rec)
		p.blocked[op.EntityID] = true

		s.logger.Info().
			Str("func", "clientSyncService.reconcilePush").
			Str("entity_id", op.EntityID).
			Str("kind", string(rec.Kind)).
			Msg("conflict detected")
		return nil
	case remoteAdvanced(entityOps, remote):
		return s.absorb(ctx, p, op.EntityID, remote)
	default:
		return s.retryLater(ctx, p, op, fmt.Errorf("%w: %w", ErrRemoteVersionRegressed, cause))
	}
}

// absorb drops the pending operations of a memo whose server copy already
// holds what they would write, and caches that copy clean.
func (s *clientSyncService) absorb(ctx context.Context, p *syncPass, entityID string, remote *models.Memo) error {
	err := s.localStore.Atomically(ctx, func(tx store.Tx) error {
		if _, err := tx.Operations().RemoveForEntity(ctx, entityID); err != nil {
			return err
		}
		if remote == nil || remote.Deleted {
			return tx.Cache().DeleteCachedMemo(ctx, entityID)
		}
		return tx.Cache().CacheMemo(ctx, remote.ToCached())
	})
	if err != nil {
		return fmt.Errorf("absorb remote copy of %s: %w", entityID, err)
	}

	s.resolver.Forget(entityID)
	p.result.Synced++
	return nil
}

// fetchRemote returns the server copy, or nil when the server has none.
func (s *clientSyncService) fetchRemote(ctx context.Context, entityID string) (*models.Memo, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	memo, err := s.adapter.GetMemo(callCtx, entityID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

// pull applies the server change feed and advances the watermark when the
// pass saw no transport failure.
func (s *clientSyncService) pull(ctx context.Context, p *syncPass) error {
	since, err := s.localStore.LastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("read watermark: %w", err)
	}

	callCtx, cancel := s.callContext(ctx)
	changes, err := s.adapter.ListChanges(callCtx, since)
	cancel()
	if err != nil {
		p.transportFailed = true
		p.addError(passError(err))
		s.logger.Warn().Err(err).Str("func", "clientSyncService.pull").Msg("could not read change feed")
		return nil
	}

	local := context.WithoutCancel(ctx)
	for _, remote := range changes.Memos {
		if ctx.Err() != nil {
			p.abandoned = true
			return nil
		}
		if err = s.applyRemote(local, p, remote); err != nil {
			return err
		}
	}

	if p.transportFailed || changes.ServerTime.IsZero() {
		return nil
	}
	if err = s.localStore.SetLastSyncTime(local, changes.ServerTime); err != nil {
		return fmt.Errorf("advance watermark: %w", err)
	}
	return nil
}

func (s *clientSyncService) applyRemote(ctx context.Context, p *syncPass, remote models.Memo) error {
	unlock := s.locks.Lock(remote.ID)
	defer unlock()

	entityOps, err := s.localStore.Operations().ListForEntity(ctx, remote.ID)
	if err != nil {
		return fmt.Errorf("list operations of %s: %w", remote.ID, err)
	}
	cached, err := s.localStore.GetCachedMemo(ctx, remote.ID)
	if err != nil {
		return fmt.Errorf("get cached memo %s: %w", remote.ID, err)
	}

	if len(entityOps) == 0 {
		return s.overwrite(ctx, p, cached, remote)
	}

	rec, conflict := s.resolver.Detect(entityOps, cached, &remote)
	switch {
	case conflict:
		s.resolver.Record(rec)
		p.addConflict(rec)
		return nil
	case remoteAdvanced(entityOps, &remote):
		return s.absorb(ctx, p, remote.ID, &remote)
	}
	// the server has not moved past the local base; the operations are
	// replayed on the next drain
	return nil
}

// overwrite applies a remote change to a memo without pending operations.
func (s *clientSyncService) overwrite(ctx context.Context, p *syncPass, cached *models.CachedMemo, remote models.Memo) error {
	if remote.Deleted {
		if cached == nil {
			return nil
		}
		if err := s.localStore.DeleteCachedMemo(ctx, remote.ID); err != nil {
			return fmt.Errorf("delete cached memo %s: %w", remote.ID, err)
		}
		s.resolver.Forget(remote.ID)
		p.result.Synced++
		return nil
	}

	if cached != nil && !cached.Dirty && cached.SyncVersion >= remote.Version {
		return nil
	}
	if err := s.localStore.CacheMemo(ctx, remote.ToCached()); err != nil {
		return fmt.Errorf("cache remote memo %s: %w", remote.ID, err)
	}
	s.resolver.Forget(remote.ID)
	p.result.Synced++
	return nil
}

func (s *clientSyncService) GetStatus(ctx context.Context) (models.SyncStatus, error) {
	status := models.SyncStatus{
		IsOnline:   s.monitor.IsOnline(),
		Conflicts:  s.resolver.Conflicts(),
		InProgress: s.inFlight.Load(),
	}

	n, err := s.localStore.Operations().Count(ctx)
	if err != nil {
		return status, fmt.Errorf("count pending operations: %w", err)
	}
	status.PendingOperations = n

	if status.LastSyncTime, err = s.localStore.LastSyncTime(ctx); err != nil {
		return status, fmt.Errorf("read watermark: %w", err)
	}
	return status, nil
}

func (s *clientSyncService) AddPendingOperation(ctx context.Context, op models.SyncOperation) (models.SyncOperation, error) {
	if err := s.validator.Validate(ctx, op); err != nil {
		return models.SyncOperation{}, err
	}

	if op.ID == "" {
		op.ID = s.ids.Generate()
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = s.now().UTC()
	}
	op.State = models.StateQueued
	op.Attempts = 0
	op.LastError = ""

	unlock := s.locks.Lock(op.EntityID)
	defer unlock()

	if err := s.localStore.Operations().Append(ctx, op); err != nil {
		return models.SyncOperation{}, fmt.Errorf("add pending operation: %w", err)
	}
	return op, nil
}

func (s *clientSyncService) GetPendingOperations(ctx context.Context) ([]models.SyncOperation, error) {
	ops, err := s.localStore.Operations().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pending operations: %w", err)
	}
	return ops, nil
}

// callContext detaches a remote call from the pass context and bounds it.
func (s *clientSyncService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if s.callTimeout <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, s.callTimeout)
}
