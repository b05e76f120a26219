// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	memosPath   = "/api/memos"
	memoPath    = "/api/memos/{id}"
	changesPath = "/api/memos/changes"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

type memoRequest struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	BaseVersion int64    `json:"base_version,omitempty"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL, configures the underlying HTTP client with the resolved
// base URL and request timeout, and stores cfg.Token as the initial bearer
// token.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		now:    time.Now,
		logger: logger,
	}
	h.SetToken(cfg.Token)
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed and
// a "Bearer " prefix is stripped if present.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Subject implements [ServerAdapter].
func (h *httpServerAdapter) Subject() string {
	claims, err := utils.ParseBearerToken(h.Token())
	if err != nil {
		return ""
	}
	return claims.Subject
}

// CreateMemo implements [ServerAdapter]. It POSTs the memo with its
// client-generated id to POST /api/memos.
func (h *httpServerAdapter) CreateMemo(ctx context.Context, id string, payload models.CreatePayload) (models.Memo, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Memo{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(memoRequest{ID: id, Title: payload.Title, Content: payload.Content, Tags: nonNilTags(payload.Tags)}).
		Post(memosPath)
	if err != nil {
		return models.Memo{}, fmt.Errorf("%w: create memo %s: %w", app.ErrNetwork, id, err)
	}

	return h.decodeMemo(resp, "httpServerAdapter.CreateMemo")
}

// UpdateMemo implements [ServerAdapter]. It PUTs the full replacement
// content with the base version to PUT /api/memos/{id}.
func (h *httpServerAdapter) UpdateMemo(ctx context.Context, id string, baseVersion int64, payload models.UpdatePayload) (models.Memo, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Memo{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(memoRequest{Title: payload.Title, Content: payload.Content, Tags: nonNilTags(payload.Tags), BaseVersion: baseVersion}).
		Put(memoPath)
	if err != nil {
		return models.Memo{}, fmt.Errorf("%w: update memo %s: %w", app.ErrNetwork, id, err)
	}

	return h.decodeMemo(resp, "httpServerAdapter.UpdateMemo")
}

// DeleteMemo implements [ServerAdapter]. It sends
// DELETE /api/memos/{id}?base_version=N.
func (h *httpServerAdapter) DeleteMemo(ctx context.Context, id string, baseVersion int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", id).
		SetQueryParam("base_version", strconv.FormatInt(baseVersion, 10)).
		Delete(memoPath)
	if err != nil {
		return fmt.Errorf("%w: delete memo %s: %w", app.ErrNetwork, id, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAdapter.DeleteMemo").Str("memo_id", id).Msg("server rejected delete")
		return err
	}
	return nil
}

// GetMemo implements [ServerAdapter]. It GETs /api/memos/{id}.
func (h *httpServerAdapter) GetMemo(ctx context.Context, id string) (models.Memo, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Memo{}, err
	}

	resp, err := req.SetPathParam("id", id).Get(memoPath)
	if err != nil {
		return models.Memo{}, fmt.Errorf("%w: get memo %s: %w", app.ErrNetwork, id, err)
	}

	return h.decodeMemo(resp, "httpServerAdapter.GetMemo")
}

// ListChanges implements [ServerAdapter]. It GETs
// /api/memos/changes?since=<RFC3339Nano>; the since parameter is omitted
// for a full pull.
func (h *httpServerAdapter) ListChanges(ctx context.Context, since *time.Time) (models.ChangeSet, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ChangeSet{}, err
	}

	if since != nil && !since.IsZero() {
		req.SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get(changesPath)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: list changes: %w", app.ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangeSet{}, err
	}

	var changes models.ChangeSet
	if err = json.Unmarshal(resp.Body(), &changes); err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.ListChanges").Msg("error decoding change feed")
		return models.ChangeSet{}, fmt.Errorf("%w: %w: decode change feed: %w", ErrInvalidResponse, app.ErrNetwork, err)
	}
	if changes.ServerTime.IsZero() {
		changes.ServerTime = parseDateHeader(resp)
	}

	return changes, nil
}

func (h *httpServerAdapter) decodeMemo(resp *resty.Response, fn string) (models.Memo, error) {
	if err := mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", fn).Int("status", resp.StatusCode()).Msg("server returned error")
		return models.Memo{}, err
	}

	var memo models.Memo
	if err := json.Unmarshal(resp.Body(), &memo); err != nil {
		h.logger.Err(err).Str("func", fn).Msg("error decoding memo")
		return models.Memo{}, fmt.Errorf("%w: %w: decode memo: %w", ErrInvalidResponse, app.ErrNetwork, err)
	}
	return memo, nil
}

// authedRequest returns a request carrying the bearer token. A token whose
// exp claim has passed fails immediately with [ErrTokenExpired].
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	token := h.Token()
	if token == "" {
		return req, nil
	}

	if claims, err := utils.ParseBearerToken(token); err == nil && claims.Expired(h.now()) {
		return nil, fmt.Errorf("%w: %w: %w", ErrUnauthorized, ErrTokenExpired, app.ErrNetwork)
	}

	req.SetHeader("Authorization", "Bearer "+token)
	return req, nil
}

// parseDateHeader reads the Date response header for change feeds that
// carry no server_time. The zero time means the watermark must not move.
func parseDateHeader(resp *resty.Response) time.Time {
	raw := resp.Header().Get("Date")
	if raw == "" {
		return time.Time{}
	}
	t, err := http.ParseTime(raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
