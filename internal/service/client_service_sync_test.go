// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/adapter"
	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/mock"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	t0         = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	serverTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	errRemoteConflict = fmt.Errorf("%w: %w: stale base", adapter.ErrConflict, app.ErrConflict)
	errRemoteNotFound = fmt.Errorf("%w: %w", adapter.ErrNotFound, app.ErrNotFound)
	errRemoteInvalid  = fmt.Errorf("%w: %w: title too long", adapter.ErrUnprocessableEntity, app.ErrValidation)
	errRemoteDown     = fmt.Errorf("%w: %w", adapter.ErrServiceUnavailable, app.ErrNetwork)
)

// syncHarness wires the sync engine to a real SQLite cache and mocked
// server and network.
type syncHarness struct {
	store    *store.SQLiteStorage
	adapter  *mock.MockServerAdapter
	online   atomic.Bool
	resolver ConflictResolver
	sync     *clientSyncService
	memos    MemoService
}

func newSyncHarness(t *testing.T) *syncHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := store.NewLocalStorage(filepath.Join(t.TempDir(), "cache.db"), logger.Nop())
	require.NoError(t, s.Open(context.Background()))
	t.Cleanup(func() { _ = s.Close() })

	h := &syncHarness{store: s, adapter: mock.NewMockServerAdapter(ctrl)}
	h.online.Store(true)

	monitor := mock.NewMockMonitor(ctrl)
	monitor.EXPECT().IsOnline().DoAndReturn(h.online.Load).AnyTimes()

	locks := utils.NewKeyedMutex()
	h.resolver = NewConflictResolver(s, locks, logger.Nop())
	h.sync = NewClientSyncService(s, h.adapter, monitor, h.resolver, locks, time.Second, logger.Nop()).(*clientSyncService)
	h.memos = NewMemoService(s, locks, logger.Nop())
	return h
}

// seed caches a clean memo at version.
func (h *syncHarness) seed(t *testing.T, id, content string, version int64) {
	t.Helper()
	require.NoError(t, h.store.CacheMemo(context.Background(), models.CachedMemo{
		ID:             id,
		Title:          "title",
		Content:        content,
		UpdatedAt:      t0,
		LocalUpdatedAt: t0,
		SyncVersion:    version,
	}))
}

func (h *syncHarness) cached(t *testing.T, id string) *models.CachedMemo {
	t.Helper()
	m, err := h.store.GetCachedMemo(context.Background(), id)
	require.NoError(t, err)
	return m
}

func (h *syncHarness) pending(t *testing.T) []models.SyncOperation {
	t.Helper()
	ops, err := h.store.Operations().List(context.Background())
	require.NoError(t, err)
	return ops
}

func (h *syncHarness) expectChanges(memos ...models.Memo) *gomock.Call {
	return h.adapter.EXPECT().ListChanges(gomock.Any(), gomock.Any()).
		Return(models.ChangeSet{Memos: memos, ServerTime: serverTime}, nil)
}

func remoteMemo(id, content string, version int64) models.Memo {
	return models.Memo{ID: id, Title: "title", Content: content, Version: version, UpdatedAt: t0.Add(time.Duration(version) * time.Minute)}
}

func update(content string) models.UpdatePayload {
	return models.UpdatePayload{Title: "title", Content: content}
}

// ── offline / not initialized ────────────────────────────────────────────────

func TestClientSyncService_Sync_Offline_NoRemoteCalls(t *testing.T) {
	h := newSyncHarness(t)
	h.online.Store(false)
	h.seed(t, "m1", "a", 1)
	_, err := h.memos.Update(context.Background(), "m1", update("b"))
	require.NoError(t, err)

	// the adapter mock has no expectations: any remote call fails the test
	result, err := h.sync.Sync(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.FailureOffline, result.Errors[0].Class)
	assert.Len(t, h.pending(t), 1)
}

func TestClientSyncService_Sync_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := mock.NewMockMonitor(ctrl)
	monitor.EXPECT().IsOnline().Return(true).AnyTimes()

	s := store.NewLocalStorage(filepath.Join(t.TempDir(), "cache.db"), logger.Nop())
	locks := utils.NewKeyedMutex()
	svc := NewClientSyncService(s, mock.NewMockServerAdapter(ctrl), monitor, NewConflictResolver(s, locks, logger.Nop()), locks, time.Second, logger.Nop())

	result, err := svc.Sync(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.FailureStorage, result.Errors[0].Class)
}

// ── push ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Sync_OfflineCreateRoundTrip(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.online.Store(false)

	created, err := h.memos.Create(ctx, models.CreatePayload{Title: "todo", Content: "milk", Tags: []string{"home"}})
	require.NoError(t, err)
	assert.True(t, h.cached(t, created.ID).Dirty)

	result, err := h.sync.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, result.Success)

	h.online.Store(true)
	h.adapter.EXPECT().
		CreateMemo(gomock.Any(), created.ID, models.CreatePayload{Title: "todo", Content: "milk", Tags: []string{"home"}}).
		Return(models.Memo{ID: created.ID, Title: "todo", Content: "milk", Tags: []string{"home"}, Version: 1, UpdatedAt: serverTime}, nil)
	h.expectChanges()

	result, err = h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Synced)
	assert.Empty(t, h.pending(t))

	memo := h.cached(t, created.ID)
	require.NotNil(t, memo)
	assert.False(t, memo.Dirty)
	assert.Equal(t, int64(1), memo.SyncVersion)
	assert.Equal(t, serverTime, memo.UpdatedAt.UTC())

	last, err := h.store.LastSyncTime(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, serverTime, last.UTC())
}

func TestClientSyncService_Sync_RebasesFollowingOperations(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	created, err := h.memos.Create(ctx, models.CreatePayload{Title: "title", Content: "v1"})
	require.NoError(t, err)
	_, err = h.memos.Update(ctx, created.ID, update("v2"))
	require.NoError(t, err)

	gomock.InOrder(
		h.adapter.EXPECT().CreateMemo(gomock.Any(), created.ID, gomock.Any()).
			Return(models.Memo{ID: created.ID, Title: "title", Content: "v1", Version: 1, UpdatedAt: t0}, nil),
		// the update queued against the unsynced memo goes out based on the
		// version the create was acknowledged with
		h.adapter.EXPECT().UpdateMemo(gomock.Any(), created.ID, int64(1), update("v2")).
			Return(models.Memo{ID: created.ID, Title: "title", Content: "v2", Version: 2, UpdatedAt: t0}, nil),
	)
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Synced)

	memo := h.cached(t, created.ID)
	assert.False(t, memo.Dirty)
	assert.Equal(t, "v2", memo.Content)
	assert.Equal(t, int64(2), memo.SyncVersion)
}

func TestClientSyncService_Sync_Delete(t *testing.T) {
	tests := []struct {
		name      string
		remoteErr error
	}{
		{name: "deleted", remoteErr: nil},
		{name: "already gone", remoteErr: errRemoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSyncHarness(t)
			ctx := context.Background()
			h.seed(t, "m1", "a", 4)
			require.NoError(t, h.memos.Delete(ctx, "m1"))

			h.adapter.EXPECT().DeleteMemo(gomock.Any(), "m1", int64(4)).Return(tt.remoteErr)
			h.expectChanges()

			result, err := h.sync.Sync(ctx)

			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, 1, result.Synced)
			assert.Nil(t, h.cached(t, "m1"))
			assert.Empty(t, h.pending(t))
		})
	}
}

func TestClientSyncService_Sync_TransientFailure_KeepsOperation(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)
	_, err = h.memos.Update(ctx, "m1", update("c"))
	require.NoError(t, err)

	// only the first operation of m1 is attempted
	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), update("b")).Return(models.Memo{}, errRemoteDown)
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.FailureTransient, result.Errors[0].Class)
	assert.Equal(t, "m1", result.Errors[0].EntityID)

	ops := h.pending(t)
	require.Len(t, ops, 2)
	assert.Equal(t, models.StateQueued, ops[0].State)
	assert.Equal(t, 1, ops[0].Attempts)
	assert.NotEmpty(t, ops[0].LastError)
	assert.Equal(t, 0, ops[1].Attempts)

	last, err := h.store.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.Nil(t, last, "watermark must not advance after a transport failure")
	assert.True(t, h.cached(t, "m1").Dirty)
}

// Scenario D: one permanently rejected operation among 25.
func TestClientSyncService_Sync_PermanentFailure_DropsOnlyThatOperation(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		id := fmt.Sprintf("m%02d", i)
		h.seed(t, id, "a", 1)
		op := models.NewUpdateOperation(id, 1, update(fmt.Sprintf("edit %d", i)))
		op.CreatedAt = t0.Add(time.Duration(i) * time.Second)
		_, err := h.sync.AddPendingOperation(ctx, op)
		require.NoError(t, err)
	}

	var order []string
	h.adapter.EXPECT().UpdateMemo(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, _ int64, p models.UpdatePayload) (models.Memo, error) {
			order = append(order, id)
			if id == "m14" {
				return models.Memo{}, errRemoteInvalid
			}
			return models.Memo{ID: id, Title: p.Title, Content: p.Content, Version: 2, UpdatedAt: t0}, nil
		}).Times(25)
	// the rejected memo is refreshed from the server
	h.adapter.EXPECT().GetMemo(gomock.Any(), "m14").Return(remoteMemo("m14", "a", 1), nil)
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success, "a permanent rejection does not fail the pass")
	assert.Equal(t, 24, result.Synced)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "m14", result.Errors[0].EntityID)
	assert.Equal(t, models.FailurePermanent, result.Errors[0].Class)
	assert.Empty(t, h.pending(t))

	require.Len(t, order, 25)
	assert.Equal(t, "m01", order[0])
	assert.Equal(t, "m25", order[24])

	m14 := h.cached(t, "m14")
	assert.False(t, m14.Dirty)
	assert.Equal(t, "a", m14.Content)
}

func TestClientSyncService_Sync_PermanentCreate_KeepsLocalContent(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	created, err := h.memos.Create(ctx, models.CreatePayload{Title: "title", Content: "draft"})
	require.NoError(t, err)

	h.adapter.EXPECT().CreateMemo(gomock.Any(), created.ID, gomock.Any()).Return(models.Memo{}, errRemoteInvalid)
	h.adapter.EXPECT().GetMemo(gomock.Any(), created.ID).Return(models.Memo{}, errRemoteNotFound)
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Empty(t, h.pending(t))
	memo := h.cached(t, created.ID)
	require.NotNil(t, memo)
	assert.Equal(t, "draft", memo.Content)
	assert.False(t, memo.Dirty, "no pending operation is left to clean the memo")
	assert.Equal(t, int64(0), memo.SyncVersion)
}

func TestClientSyncService_Sync_PermanentUpdate_ServerCopyUnavailable(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 3)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)

	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(3), update("b")).Return(models.Memo{}, errRemoteInvalid)
	h.adapter.EXPECT().GetMemo(gomock.Any(), "m1").Return(models.Memo{}, errRemoteDown)
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.FailurePermanent, result.Errors[0].Class)
	assert.Empty(t, h.pending(t))

	memo := h.cached(t, "m1")
	require.NotNil(t, memo)
	assert.False(t, memo.Dirty)
	assert.Equal(t, int64(3), memo.SyncVersion)
	assert.Equal(t, "b", memo.Content)
}

// ── conflicts ────────────────────────────────────────────────────────────────

// scenarioA leaves m1 edited locally to "b" while the server moved to "c".
func scenarioA(t *testing.T, h *syncHarness) models.SyncResult {
	t.Helper()
	ctx := context.Background()
	h.seed(t, "m1", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)

	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), update("b")).Return(models.Memo{}, errRemoteConflict)
	h.adapter.EXPECT().GetMemo(gomock.Any(), "m1").Return(remoteMemo("m1", "c", 2), nil)
	h.expectChanges(remoteMemo("m1", "c", 2))

	result, err := h.sync.Sync(ctx)
	require.NoError(t, err)
	return result
}

func TestClientSyncService_ScenarioA_ConflictReported(t *testing.T) {
	h := newSyncHarness(t)

	result := scenarioA(t, h)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Synced)
	require.Len(t, result.Conflicts, 1)
	rec := result.Conflicts[0]
	assert.Equal(t, "m1", rec.EntityID)
	assert.Equal(t, models.ConflictEditEdit, rec.Kind)
	require.NotNil(t, rec.Local)
	require.NotNil(t, rec.Remote)
	assert.Equal(t, "b", rec.Local.Content)
	assert.Equal(t, "c", rec.Remote.Content)
	assert.Equal(t, int64(1), rec.BaseVersion)

	memo := h.cached(t, "m1")
	assert.True(t, memo.Dirty)
	assert.Equal(t, "b", memo.Content)

	ops := h.pending(t)
	require.Len(t, ops, 1)
	assert.Equal(t, models.StateQueued, ops[0].State)
	assert.Equal(t, 0, ops[0].Attempts, "a conflict is not a delivery attempt")
	assert.True(t, h.resolver.HasConflict("m1"))

	last, err := h.store.LastSyncTime(context.Background())
	require.NoError(t, err)
	require.NotNil(t, last, "watermark advances past conflicts")
}

func TestClientSyncService_ScenarioB_ResolveRemote(t *testing.T) {
	h := newSyncHarness(t)
	scenarioA(t, h)

	outcome, err := h.resolver.ResolveConflict(context.Background(), "m1", models.ResolveRemote)

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Discarded)
	assert.False(t, h.resolver.HasConflict("m1"))
	assert.Empty(t, h.pending(t))

	memo := h.cached(t, "m1")
	assert.Equal(t, "c", memo.Content)
	assert.False(t, memo.Dirty)
	assert.Equal(t, int64(2), memo.SyncVersion)
}

func TestClientSyncService_ResolveLocal_PushesOnNextPass(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	scenarioA(t, h)

	outcome, err := h.resolver.ResolveConflict(ctx, "m1", models.ResolveLocal)
	require.NoError(t, err)
	require.NotNil(t, outcome.Requeued)
	assert.Equal(t, int64(2), outcome.Requeued.BaseVersion)

	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(2), update("b")).Return(remoteMemo("m1", "b", 3), nil)
	h.expectChanges(remoteMemo("m1", "b", 3))

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Conflicts)
	memo := h.cached(t, "m1")
	assert.False(t, memo.Dirty)
	assert.Equal(t, "b", memo.Content)
	assert.Equal(t, int64(3), memo.SyncVersion)
}

func TestClientSyncService_Sync_ConflictedEntityIsNotPushed(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	scenarioA(t, h)

	// unresolved: the queued update is held back, the pull still runs
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Conflicts)
	assert.Len(t, h.pending(t), 1)
	assert.Len(t, h.resolver.Conflicts(), 1)
}

func TestClientSyncService_Sync_EqualContent_IsNotAConflict(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)

	// someone else already wrote "b" at version 2
	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), update("b")).Return(models.Memo{}, errRemoteConflict)
	h.adapter.EXPECT().GetMemo(gomock.Any(), "m1").Return(remoteMemo("m1", "b", 2), nil)
	h.expectChanges(remoteMemo("m1", "b", 2))

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 1, result.Synced)
	assert.Empty(t, h.pending(t))

	memo := h.cached(t, "m1")
	assert.False(t, memo.Dirty)
	assert.Equal(t, int64(2), memo.SyncVersion)
}

func TestClientSyncService_Sync_EqualContentOnPull_AbsorbsOperations(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)

	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), gomock.Any()).Return(models.Memo{}, errRemoteDown)
	h.expectChanges(remoteMemo("m1", "b", 2))

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, h.pending(t))
	assert.False(t, h.cached(t, "m1").Dirty)
}

func TestClientSyncService_Sync_ConflictKinds(t *testing.T) {
	tests := []struct {
		name   string
		prep   func(t *testing.T, h *syncHarness) string
		expect func(h *syncHarness, id string)
		want   models.ConflictKind
	}{
		{
			name: "create_create",
			prep: func(t *testing.T, h *syncHarness) string {
				m, err := h.memos.Create(context.Background(), models.CreatePayload{Title: "title", Content: "mine"})
				require.NoError(t, err)
				return m.ID
			},
			expect: func(h *syncHarness, id string) {
				h.adapter.EXPECT().CreateMemo(gomock.Any(), id, gomock.Any()).Return(models.Memo{}, errRemoteConflict)
				h.adapter.EXPECT().GetMemo(gomock.Any(), id).Return(remoteMemo(id, "theirs", 1), nil)
			},
			want: models.ConflictCreateCreate,
		},
		{
			name: "edit_delete",
			prep: func(t *testing.T, h *syncHarness) string {
				h.seed(t, "m1", "a", 1)
				_, err := h.memos.Update(context.Background(), "m1", update("b"))
				require.NoError(t, err)
				return "m1"
			},
			expect: func(h *syncHarness, id string) {
				h.adapter.EXPECT().UpdateMemo(gomock.Any(), id, int64(1), gomock.Any()).Return(models.Memo{}, errRemoteNotFound)
				h.adapter.EXPECT().GetMemo(gomock.Any(), id).Return(models.Memo{}, errRemoteNotFound)
			},
			want: models.ConflictEditDelete,
		},
		{
			name: "delete_edit",
			prep: func(t *testing.T, h *syncHarness) string {
				h.seed(t, "m1", "a", 1)
				require.NoError(t, h.memos.Delete(context.Background(), "m1"))
				return "m1"
			},
			expect: func(h *syncHarness, id string) {
				h.adapter.EXPECT().DeleteMemo(gomock.Any(), id, int64(1)).Return(errRemoteConflict)
				h.adapter.EXPECT().GetMemo(gomock.Any(), id).Return(remoteMemo(id, "edited", 2), nil)
			},
			want: models.ConflictDeleteEdit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSyncHarness(t)
			id := tt.prep(t, h)
			tt.expect(h, id)
			h.expectChanges()

			result, err := h.sync.Sync(context.Background())

			require.NoError(t, err)
			require.Len(t, result.Conflicts, 1)
			assert.Equal(t, tt.want, result.Conflicts[0].Kind)
			assert.Len(t, h.pending(t), 1)
		})
	}
}

func TestClientSyncService_Sync_RemoteNotAdvanced_IsTransient(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 3)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)

	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(3), gomock.Any()).Return(models.Memo{}, errRemoteConflict)
	h.adapter.EXPECT().GetMemo(gomock.Any(), "m1").Return(remoteMemo("m1", "a", 3), nil)
	h.expectChanges()

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.Conflicts)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, ErrRemoteVersionRegressed.Error())
	assert.Len(t, h.pending(t), 1)
}

// ── pull ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Sync_PullAppliesRemoteChanges(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 1)
	h.seed(t, "gone", "x", 1)
	h.seed(t, "same", "s", 5)

	tombstone := remoteMemo("gone", "", 2)
	tombstone.Deleted = true
	h.expectChanges(
		remoteMemo("m1", "fresh", 2),
		remoteMemo("new", "hello", 1),
		tombstone,
		remoteMemo("same", "s", 5),
	)

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Synced)
	assert.Equal(t, "fresh", h.cached(t, "m1").Content)
	assert.Equal(t, "hello", h.cached(t, "new").Content)
	assert.Nil(t, h.cached(t, "gone"))
}

func TestClientSyncService_Sync_PullSendsWatermark(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.SetLastSyncTime(ctx, t0))

	h.adapter.EXPECT().ListChanges(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since *time.Time) (models.ChangeSet, error) {
			if assert.NotNil(t, since) {
				assert.Equal(t, t0, since.UTC())
			}
			return models.ChangeSet{}, nil
		})

	result, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	last, err := h.store.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, t0, last.UTC(), "a zero server time leaves the watermark")
}

func TestClientSyncService_Sync_PullFailure(t *testing.T) {
	h := newSyncHarness(t)
	h.adapter.EXPECT().ListChanges(gomock.Any(), gomock.Any()).Return(models.ChangeSet{}, errRemoteDown)

	result, err := h.sync.Sync(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.FailureTransient, result.Errors[0].Class)
}

func TestClientSyncService_Sync_Idempotent(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	h.seed(t, "m1", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)

	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), gomock.Any()).Return(remoteMemo("m1", "b", 2), nil)
	h.expectChanges(remoteMemo("m1", "b", 2), remoteMemo("m2", "z", 1)).Times(2)

	first, err := h.sync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Synced)

	second, err := h.sync.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, 0, second.Synced)
	assert.Empty(t, second.Conflicts)
}

// ── concurrency ──────────────────────────────────────────────────────────────

func TestClientSyncService_Quiesce_BlocksSync(t *testing.T) {
	h := newSyncHarness(t)
	h.expectChanges()

	done := make(chan struct{})
	err := h.sync.Quiesce(context.Background(), func(ctx context.Context) error {
		go func() {
			_, _ = h.sync.Sync(context.Background())
			close(done)
		}()

		select {
		case <-done:
			t.Error("sync ran while quiesced")
		case <-time.After(50 * time.Millisecond):
		}
		return nil
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sync did not run after Quiesce returned")
	}
}

func TestClientSyncService_Sync_ConcurrentCallersSharePass(t *testing.T) {
	h := newSyncHarness(t)
	release := make(chan struct{})
	h.adapter.EXPECT().ListChanges(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *time.Time) (models.ChangeSet, error) {
			<-release
			return models.ChangeSet{ServerTime: serverTime}, nil
		}).Times(1)

	results := make(chan models.SyncResult, 2)
	for range 2 {
		go func() {
			r, _ := h.sync.Sync(context.Background())
			results <- r
		}()
	}

	require.Eventually(t, h.sync.inFlight.Load, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)

	first, second := <-results, <-results
	assert.True(t, first.Success)
	assert.Equal(t, first.StartedAt, second.StartedAt)
}

func TestClientSyncService_Sync_AbandonedBetweenOperations(t *testing.T) {
	h := newSyncHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.seed(t, "m1", "a", 1)
	h.seed(t, "m2", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)
	_, err = h.memos.Update(ctx, "m2", update("b"))
	require.NoError(t, err)

	// the first push lands, then the caller gives up; m2 is never sent
	h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), gomock.Any()).
		DoAndReturn(func(context.Context, string, int64, models.UpdatePayload) (models.Memo, error) {
			cancel()
			require.Eventually(t, func() bool { return joinedCallers(h.sync) == 0 }, time.Second, time.Millisecond)
			return remoteMemo("m1", "b", 2), nil
		})

	_, err = h.sync.Sync(ctx)

	require.ErrorIs(t, err, ErrSyncAbandoned)
	require.Eventually(t, func() bool { return !h.sync.inFlight.Load() }, time.Second, time.Millisecond)

	ops := h.pending(t)
	require.Len(t, ops, 1)
	assert.Equal(t, "m2", ops[0].EntityID)
	assert.False(t, h.cached(t, "m1").Dirty)
}

func TestClientSyncService_Sync_PassOutlivesFirstCaller(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	first, cancelFirst := context.WithCancel(ctx)
	defer cancelFirst()

	h.seed(t, "m1", "a", 1)
	h.seed(t, "m2", "a", 1)
	_, err := h.memos.Update(ctx, "m1", update("b"))
	require.NoError(t, err)
	_, err = h.memos.Update(ctx, "m2", update("b"))
	require.NoError(t, err)

	pushing := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m1", int64(1), gomock.Any()).
			DoAndReturn(func(context.Context, string, int64, models.UpdatePayload) (models.Memo, error) {
				close(pushing)
				<-release
				return remoteMemo("m1", "b", 2), nil
			}),
		h.adapter.EXPECT().UpdateMemo(gomock.Any(), "m2", int64(1), gomock.Any()).
			Return(remoteMemo("m2", "b", 2), nil),
	)
	h.expectChanges()

	firstErr := make(chan error, 1)
	go func() {
		_, err := h.sync.Sync(first)
		firstErr <- err
	}()
	<-pushing

	type outcome struct {
		result models.SyncResult
		err    error
	}
	second := make(chan outcome, 1)
	go func() {
		r, err := h.sync.Sync(ctx)
		second <- outcome{r, err}
	}()
	require.Eventually(t, func() bool { return joinedCallers(h.sync) == 2 }, time.Second, time.Millisecond)

	cancelFirst()
	require.ErrorIs(t, <-firstErr, ErrSyncAbandoned)
	close(release)

	got := <-second
	require.NoError(t, got.err)
	assert.True(t, got.result.Success)
	assert.Equal(t, 2, got.result.Synced)
	assert.Empty(t, h.pending(t))
}

// joinedCallers reports how many Sync callers wait on the current pass.
func joinedCallers(s *clientSyncService) int {
	s.scopeMu.Lock()
	defer s.scopeMu.Unlock()
	if s.scope == nil {
		return 0
	}
	return s.scope.waiters
}

// ── pending operations / status ──────────────────────────────────────────────

func TestClientSyncService_AddPendingOperation_Order(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()

	offsets := []int{5, 1, 3, 1, 4, 2}
	for i, off := range offsets {
		op := models.NewUpdateOperation(fmt.Sprintf("m%d", i), 1, update("x"))
		op.CreatedAt = t0.Add(time.Duration(off) * time.Second)
		stored, err := h.sync.AddPendingOperation(ctx, op)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.ID)
		assert.Equal(t, models.StateQueued, stored.State)
	}

	ops, err := h.sync.GetPendingOperations(ctx)

	require.NoError(t, err)
	require.Len(t, ops, len(offsets))
	for i := 1; i < len(ops); i++ {
		assert.False(t, ops[i].CreatedAt.Before(ops[i-1].CreatedAt), "operations out of order at %d", i)
	}
	// equal timestamps keep insertion order
	assert.Equal(t, "m1", ops[0].EntityID)
	assert.Equal(t, "m3", ops[1].EntityID)
}

func TestClientSyncService_AddPendingOperation_Invalid(t *testing.T) {
	h := newSyncHarness(t)

	tests := []struct {
		name string
		op   models.SyncOperation
	}{
		{name: "missing entity", op: models.NewDeleteOperation("", 1)},
		{name: "empty title", op: models.NewUpdateOperation("m1", 1, models.UpdatePayload{})},
		{name: "create with base", op: func() models.SyncOperation {
			op := models.NewCreateOperation("m1", models.CreatePayload{Title: "t"})
			op.BaseVersion = 2
			return op
		}()},
		{name: "payload mismatch", op: models.SyncOperation{EntityID: "m1", Kind: models.OperationUpdate, Payload: models.DeletePayload{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.sync.AddPendingOperation(context.Background(), tt.op)
			assert.ErrorIs(t, err, app.ErrValidation)
		})
	}
	assert.Empty(t, h.pending(t))
}

func TestClientSyncService_GetStatus(t *testing.T) {
	h := newSyncHarness(t)
	ctx := context.Background()
	scenarioA(t, h)

	status, err := h.sync.GetStatus(ctx)

	require.NoError(t, err)
	assert.True(t, status.IsOnline)
	assert.Equal(t, 1, status.PendingOperations)
	require.NotNil(t, status.LastSyncTime)
	assert.Equal(t, serverTime, status.LastSyncTime.UTC())
	require.Len(t, status.Conflicts, 1)
	assert.False(t, status.InProgress)
}
