// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
)

// ErrServeNotRunning is returned when nothing answers on the IPC address.
var ErrServeNotRunning = errors.New("memosync is not serving on the IPC address, start it with `memosync serve`")

// IPCError is a non-2xx answer of the IPC surface.
type IPCError struct {
	Status  int
	Message string
}

func (e *IPCError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// IPCClient calls the loopback IPC surface of a running client.
type IPCClient struct {
	client *utils.HTTPClient
}

func NewIPCClient(address string, timeout time.Duration) *IPCClient {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return &IPCClient{client: utils.NewHTTPClient(address, timeout)}
}

type pendingOperations struct {
	Operations []models.SyncOperation `json:"operations"`
	Length     int                    `json:"length"`
}

func (c *IPCClient) Status(ctx context.Context) (models.SyncStatus, error) {
	var out models.SyncStatus
	return out, c.do(ctx, http.MethodGet, "/api/sync/status", nil, &out)
}

func (c *IPCClient) Sync(ctx context.Context) (models.SyncResult, error) {
	var out models.SyncResult
	return out, c.do(ctx, http.MethodPost, "/api/sync", nil, &out)
}

func (c *IPCClient) PendingOperations(ctx context.Context) ([]models.SyncOperation, error) {
	var out pendingOperations
	return out.Operations, c.do(ctx, http.MethodGet, "/api/sync/operations", nil, &out)
}

func (c *IPCClient) Memos(ctx context.Context) ([]models.CachedMemo, error) {
	var out []models.CachedMemo
	return out, c.do(ctx, http.MethodGet, "/api/memos", nil, &out)
}

func (c *IPCClient) CreateMemo(ctx context.Context, payload models.CreatePayload) (models.CachedMemo, error) {
	var out models.CachedMemo
	return out, c.do(ctx, http.MethodPost, "/api/memos", payload, &out)
}

func (c *IPCClient) UpdateMemo(ctx context.Context, id string, payload models.UpdatePayload) (models.CachedMemo, error) {
	var out models.CachedMemo
	return out, c.do(ctx, http.MethodPut, "/api/memos/"+id, payload, &out)
}

func (c *IPCClient) DeleteMemo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/memos/"+id, nil, nil)
}

func (c *IPCClient) Conflicts(ctx context.Context) ([]models.ConflictRecord, error) {
	var out []models.ConflictRecord
	return out, c.do(ctx, http.MethodGet, "/api/conflicts", nil, &out)
}

func (c *IPCClient) Resolve(ctx context.Context, entityID string, resolution models.Resolution) (models.ResolveOutcome, error) {
	var out models.ResolveOutcome
	body := map[string]models.Resolution{"resolution": resolution}
	return out, c.do(ctx, http.MethodPost, "/api/conflicts/"+entityID+"/resolve", body, &out)
}

func (c *IPCClient) Stats(ctx context.Context) (models.CacheStats, error) {
	var out models.CacheStats
	return out, c.do(ctx, http.MethodGet, "/api/cache/stats", nil, &out)
}

func (c *IPCClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/session/logout", nil, nil)
}

func (c *IPCClient) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/session/reset", nil, nil)
}

func (c *IPCClient) do(ctx context.Context, method, path string, body, out any) error {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return ErrServeNotRunning
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return &IPCError{Status: resp.StatusCode(), Message: strings.TrimSpace(resp.String())}
	}
	return nil
}
