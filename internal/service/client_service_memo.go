// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/internal/validators"
	"github.com/MKhiriev/go-memo-sync/models"
)

type memoService struct {
	localStore store.LocalStorage
	locks      *utils.KeyedMutex
	validator  validators.Validator
	ids        *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewMemoService creates the local editor.
func NewMemoService(localStore store.LocalStorage, locks *utils.KeyedMutex, logger *logger.Logger) MemoService {
	return &memoService{
		localStore: localStore,
		locks:      locks,
		validator:  validators.NewOperationValidator(),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *memoService) Create(ctx context.Context, payload models.CreatePayload) (models.CachedMemo, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.CachedMemo{}, err
	}

	now := s.now().UTC()
	memo := models.CachedMemo{
		ID:             s.ids.Generate(),
		Title:          payload.Title,
		Content:        payload.Content,
		Tags:           slices.Clone(payload.Tags),
		LocalUpdatedAt: now,
		Dirty:          true,
	}
	op := s.stamp(models.NewCreateOperation(memo.ID, payload), now)

	unlock := s.locks.Lock(memo.ID)
	defer unlock()

	err := s.localStore.Atomically(ctx, func(tx store.Tx) error {
		if err := tx.Cache().CacheMemo(ctx, memo); err != nil {
			return err
		}
		return tx.Operations().Append(ctx, op)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "memoService.Create").Msg("error creating memo")
		return models.CachedMemo{}, fmt.Errorf("create memo: %w", err)
	}
	return memo, nil
}

func (s *memoService) Update(ctx context.Context, id string, payload models.UpdatePayload) (models.CachedMemo, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.CachedMemo{}, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	var memo models.CachedMemo
	err := s.localStore.Atomically(ctx, func(tx store.Tx) error {
		cached, err := tx.Cache().GetCachedMemo(ctx, id)
		if err != nil {
			return err
		}
		if cached == nil || cached.PendingDelete {
			return ErrMemoNotFound
		}

		now := s.now().UTC()
		memo = *cached
		memo.Title = payload.Title
		memo.Content = payload.Content
		memo.Tags = slices.Clone(payload.Tags)
		memo.LocalUpdatedAt = now
		memo.Dirty = true

		if err = tx.Cache().CacheMemo(ctx, memo); err != nil {
			return err
		}
		return tx.Operations().Append(ctx, s.stamp(models.NewUpdateOperation(id, cached.SyncVersion, payload), now))
	})
	if err != nil {
		return models.CachedMemo{}, fmt.Errorf("update memo %s: %w", id, err)
	}
	return memo, nil
}

func (s *memoService) Delete(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	err := s.localStore.Atomically(ctx, func(tx store.Tx) error {
		cached, err := tx.Cache().GetCachedMemo(ctx, id)
		if err != nil {
			return err
		}
		if cached == nil || cached.PendingDelete {
			return ErrMemoNotFound
		}

		ops, err := tx.Operations().ListForEntity(ctx, id)
		if err != nil {
			return err
		}
		if cached.SyncVersion == 0 && neverSent(ops) {
			if _, err = tx.Operations().RemoveForEntity(ctx, id); err != nil {
				return err
			}
			return tx.Cache().DeleteCachedMemo(ctx, id)
		}

		now := s.now().UTC()
		cached.PendingDelete = true
		cached.Dirty = true
		cached.LocalUpdatedAt = now
		if err = tx.Cache().CacheMemo(ctx, *cached); err != nil {
			return err
		}
		return tx.Operations().Append(ctx, s.stamp(models.NewDeleteOperation(id, cached.SyncVersion), now))
	})
	if err != nil {
		return fmt.Errorf("delete memo %s: %w", id, err)
	}
	return nil
}

func (s *memoService) stamp(op models.SyncOperation, at time.Time) models.SyncOperation {
	op.ID = s.ids.Generate()
	op.CreatedAt = at
	return op
}

// neverSent reports whether none of ops may have reached the server.
func neverSent(ops []models.SyncOperation) bool {
	for _, op := range ops {
		if op.Attempts > 0 || op.State != models.StateQueued {
			return false
		}
	}
	return true
}
