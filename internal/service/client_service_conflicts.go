// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
)

type conflictResolver struct {
	localStore store.LocalStorage
	locks      *utils.KeyedMutex
	ids        *utils.UUIDGenerator

	mu        sync.RWMutex
	conflicts map[string]models.ConflictRecord

	now    func() time.Time
	logger *logger.Logger
}

// NewConflictResolver creates a resolver that keeps unresolved conflicts in
// memory for the lifetime of the session. locks must be the entity lock
// shared with the sync engine and the local editor.
func NewConflictResolver(localStore store.LocalStorage, locks *utils.KeyedMutex, logger *logger.Logger) ConflictResolver {
	return &conflictResolver{
		localStore: localStore,
		locks:      locks,
		ids:        utils.NewUUIDGenerator(),
		conflicts:  make(map[string]models.ConflictRecord),
		now:        time.Now,
		logger:     logger,
	}
}

// localIntent is the state the pending operations of one memo would leave
// on the server once all of them are delivered.
type localIntent struct {
	deleted bool
	title   string
	content string
	tags    []string
	at      time.Time
}

func intentOf(ops []models.SyncOperation) localIntent {
	var in localIntent
	for _, op := range ops {
		if title, content, tags, ok := op.Fields(); ok {
			in = localIntent{title: title, content: content, tags: tags}
		} else {
			in.deleted = true
		}
		in.at = op.CreatedAt
	}
	return in
}

// sameContent compares the intent with the server copy by content digest.
// A local delete equals a remote delete.
func (in localIntent) sameContent(remote *models.Memo) bool {
	remoteDeleted := remote == nil || remote.Deleted
	if in.deleted || remoteDeleted {
		return in.deleted == remoteDeleted
	}
	return utils.ContentDigest(in.title, in.content, in.tags) ==
		utils.ContentDigest(remote.Title, remote.Content, remote.Tags)
}

// remoteAdvanced reports whether the server changed the memo after the
// version the first pending operation was based on. A missing or deleted
// server copy always counts as a change.
func remoteAdvanced(ops []models.SyncOperation, remote *models.Memo) bool {
	if len(ops) == 0 {
		return false
	}
	if remote == nil || remote.Deleted {
		return true
	}
	return remote.Version > ops[0].BaseVersion
}

func (r *conflictResolver) Detect(ops []models.SyncOperation, cached *models.CachedMemo, remote *models.Memo) (models.ConflictRecord, bool) {
	if !remoteAdvanced(ops, remote) {
		return models.ConflictRecord{}, false
	}

	in := intentOf(ops)
	if in.sameContent(remote) {
		return models.ConflictRecord{}, false
	}

	first := ops[0]
	rec := models.ConflictRecord{
		EntityID:    first.EntityID,
		BaseVersion: first.BaseVersion,
		Status:      models.ConflictUnresolved,
		DetectedAt:  r.now().UTC(),
	}

	if !in.deleted {
		localAt := in.at
		if cached != nil && !cached.LocalUpdatedAt.IsZero() {
			localAt = cached.LocalUpdatedAt
		}
		rec.Local = &models.MemoSnapshot{
			ID:        first.EntityID,
			Title:     in.title,
			Content:   in.content,
			Tags:      slices.Clone(in.tags),
			Version:   first.BaseVersion,
			UpdatedAt: localAt,
		}
	}
	if remote != nil {
		rec.Remote = remote.Snapshot()
	}

	switch {
	case first.Kind == models.OperationCreate && !in.deleted && rec.Remote != nil:
		rec.Kind = models.ConflictCreateCreate
	case in.deleted:
		rec.Kind = models.ConflictDeleteEdit
	case rec.Remote == nil:
		rec.Kind = models.ConflictEditDelete
	default:
		rec.Kind = models.ConflictEditEdit
	}

	return rec, true
}

func (r *conflictResolver) Record(rec models.ConflictRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.conflicts[rec.EntityID]; ok {
		rec.DetectedAt = prev.DetectedAt
	}
	r.conflicts[rec.EntityID] = rec
}

func (r *conflictResolver) Forget(entityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conflicts, entityID)
}

func (r *conflictResolver) HasConflict(entityID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conflicts[entityID]
	return ok
}

func (r *conflictResolver) Conflicts() []models.ConflictRecord {
	r.mu.RLock()
	out := make([]models.ConflictRecord, 0, len(r.conflicts))
	for _, rec := range r.conflicts {
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].DetectedAt.Equal(out[j].DetectedAt) {
			return out[i].EntityID < out[j].EntityID
		}
		return out[i].DetectedAt.Before(out[j].DetectedAt)
	})
	return out
}

func (r *conflictResolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts = make(map[string]models.ConflictRecord)
}

func (r *conflictResolver) ResolveConflict(ctx context.Context, entityID string, resolution models.Resolution) (models.ResolveOutcome, error) {
	if !resolution.Valid() {
		return models.ResolveOutcome{}, fmt.Errorf("%w: %s", app.ErrValidation, app.MsgInvalidResolution)
	}

	unlock := r.locks.Lock(entityID)
	defer unlock()

	r.mu.RLock()
	rec, ok := r.conflicts[entityID]
	r.mu.RUnlock()
	if !ok {
		return models.ResolveOutcome{}, ErrConflictNotFound
	}

	outcome := models.ResolveOutcome{EntityID: entityID, Resolution: resolution}
	err := r.localStore.Atomically(ctx, func(tx store.Tx) error {
		ops, err := tx.Operations().ListForEntity(ctx, entityID)
		if err != nil {
			return err
		}
		cached, err := tx.Cache().GetCachedMemo(ctx, entityID)
		if err != nil {
			return err
		}
		if outcome.Discarded, err = tx.Operations().RemoveForEntity(ctx, entityID); err != nil {
			return err
		}

		if resolution == models.ResolveRemote {
			return r.keepRemote(ctx, tx, rec, &outcome)
		}
		return r.keepLocal(ctx, tx, rec, ops, cached, &outcome)
	})
	if err != nil {
		r.logger.Err(err).Str("func", "conflictResolver.ResolveConflict").Str("entity_id", entityID).Msg("error resolving conflict")
		return models.ResolveOutcome{}, fmt.Errorf("resolve conflict %s: %w", entityID, err)
	}

	r.Forget(entityID)

	r.logger.Info().
		Str("func", "conflictResolver.ResolveConflict").
		Str("entity_id", entityID).
		Str("resolution", string(resolution)).
		Int("discarded", outcome.Discarded).
		Msg("conflict resolved")
	return outcome, nil
}

// keepRemote overwrites the cache with the server copy, clean.
func (r *conflictResolver) keepRemote(ctx context.Context, tx store.Tx, rec models.ConflictRecord, outcome *models.ResolveOutcome) error {
	if rec.Remote == nil {
		return tx.Cache().DeleteCachedMemo(ctx, rec.EntityID)
	}

	memo := models.CachedMemo{
		ID:             rec.EntityID,
		Title:          rec.Remote.Title,
		Content:        rec.Remote.Content,
		Tags:           slices.Clone(rec.Remote.Tags),
		UpdatedAt:      rec.Remote.UpdatedAt,
		LocalUpdatedAt: rec.Remote.UpdatedAt,
		SyncVersion:    rec.Remote.Version,
	}
	if err := tx.Cache().CacheMemo(ctx, memo); err != nil {
		return err
	}
	outcome.Memo = &memo
	return nil
}

// keepLocal queues one fresh operation carrying the local intent, based on
// the server version recorded with the conflict, so the next push does not
// conflict again.
func (r *conflictResolver) keepLocal(ctx context.Context, tx store.Tx, rec models.ConflictRecord, ops []models.SyncOperation, cached *models.CachedMemo, outcome *models.ResolveOutcome) error {
	in := intentOf(ops)
	if len(ops) == 0 {
		in = localIntent{deleted: rec.Local == nil}
		if rec.Local != nil {
			in.title, in.content, in.tags = rec.Local.Title, rec.Local.Content, rec.Local.Tags
		}
	}

	now := r.now().UTC()
	memo := models.CachedMemo{ID: rec.EntityID, LocalUpdatedAt: now, Dirty: true}
	if cached != nil {
		memo = *cached
		memo.Dirty = true
	}

	var op models.SyncOperation
	switch {
	case in.deleted && rec.Remote == nil:
		// both sides deleted; nothing left to push
		return tx.Cache().DeleteCachedMemo(ctx, rec.EntityID)
	case in.deleted:
		op = models.NewDeleteOperation(rec.EntityID, rec.Remote.Version)
		memo.PendingDelete = true
	case rec.Remote == nil:
		op = models.NewCreateOperation(rec.EntityID, models.CreatePayload{Title: in.title, Content: in.content, Tags: in.tags})
	default:
		op = models.NewUpdateOperation(rec.EntityID, rec.Remote.Version, models.UpdatePayload{Title: in.title, Content: in.content, Tags: in.tags})
	}

	if !in.deleted {
		memo.Title, memo.Content, memo.Tags = in.title, in.content, slices.Clone(in.tags)
		memo.PendingDelete = false
		memo.LocalUpdatedAt = now
	}
	memo.SyncVersion = 0
	if rec.Remote != nil {
		memo.SyncVersion = rec.Remote.Version
		memo.UpdatedAt = rec.Remote.UpdatedAt
	}

	op.ID = r.ids.Generate()
	op.CreatedAt = now
	if err := tx.Operations().Append(ctx, op); err != nil {
		return err
	}
	if err := tx.Cache().CacheMemo(ctx, memo); err != nil {
		return err
	}

	outcome.Memo = &memo
	outcome.Requeued = &op
	return nil
}
