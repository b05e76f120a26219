// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func signToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func writeMemo(t *testing.T, w http.ResponseWriter, status int, m models.Memo) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(m))
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "trims slash", raw: "https://memo.example.com/", want: "https://memo.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_StripsBearerPrefix(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	a.SetToken("  Bearer abc.def.ghi ")
	assert.Equal(t, "abc.def.ghi", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

func TestSubject(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	assert.Empty(t, a.Subject())

	a.SetToken(signToken(t, "user-42", time.Now().Add(time.Hour)))
	assert.Equal(t, "user-42", a.Subject())
}

func TestCreateMemo_Success(t *testing.T) {
	token := signToken(t, "u1", time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/memos", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))

		var body memoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "m1", body.ID)
		assert.Equal(t, "Groceries", body.Title)
		assert.Equal(t, []string{}, body.Tags)

		writeMemo(t, w, http.StatusCreated, models.Memo{ID: body.ID, Title: body.Title, Version: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(token)

	got, err := a.CreateMemo(context.Background(), "m1", models.CreatePayload{Title: "Groceries"})
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, int64(1), got.Version)
}

func TestUpdateMemo_SendsBaseVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/memos/m1", r.URL.Path)

		var body memoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(3), body.BaseVersion)
		assert.Equal(t, []string{"a"}, body.Tags)

		writeMemo(t, w, http.StatusOK, models.Memo{ID: "m1", Title: body.Title, Tags: body.Tags, Version: 4})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateMemo(context.Background(), "m1", 3, models.UpdatePayload{Title: "t", Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Version)
}

func TestUpdateMemo_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"version mismatch"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UpdateMemo(context.Background(), "m1", 1, models.UpdatePayload{Title: "t"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, app.ErrConflict)
	assert.Contains(t, err.Error(), "version mismatch")
}

func TestDeleteMemo(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "already deleted", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: app.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/memos/m9", r.URL.Path)
				assert.Equal(t, "7", r.URL.Query().Get("base_version"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).DeleteMemo(context.Background(), "m9", 7)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetMemo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"memo not found"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMemo(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestGetMemo_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMemo(context.Background(), "m1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListChanges_SinceParameter(t *testing.T) {
	since := time.Date(2026, 3, 1, 10, 0, 0, 500, time.UTC)
	serverTime := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	var gotSince string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/memos/changes", r.URL.Path)
		gotSince = r.URL.Query().Get("since")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ChangeSet{
			Memos:      []models.Memo{{ID: "a", Version: 2}, {ID: "b", Version: 5, Deleted: true}},
			ServerTime: serverTime,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	changes, err := a.ListChanges(context.Background(), &since)
	require.NoError(t, err)
	assert.Equal(t, since.Format(time.RFC3339Nano), gotSince)
	require.Len(t, changes.Memos, 2)
	assert.True(t, changes.Memos[1].Deleted)
	assert.True(t, serverTime.Equal(changes.ServerTime))

	_, err = a.ListChanges(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gotSince)
}

func TestListChanges_FallsBackToDateHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Date", "Sun, 01 Mar 2026 11:00:00 GMT")
		_, _ = w.Write([]byte(`{"memos":[]}`))
	}))
	defer srv.Close()

	changes, err := newTestAdapter(t, srv.URL).ListChanges(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), changes.ServerTime)
}

func TestExpiredToken_ShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(signToken(t, "u1", time.Now().Add(-time.Minute)))

	_, err := a.GetMemo(context.Background(), "m1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, app.ErrNetwork)
	assert.False(t, called)
}

func TestTransportError_IsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetMemo(context.Background(), "m1")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrNetwork)
}

func TestMapHTTPError_Classes(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
		class    models.FailureClass
	}{
		{http.StatusBadRequest, ErrBadRequest, models.FailurePermanent},
		{http.StatusUnauthorized, ErrUnauthorized, models.FailureTransient},
		{http.StatusForbidden, ErrForbidden, models.FailureTransient},
		{http.StatusUnprocessableEntity, ErrUnprocessableEntity, models.FailurePermanent},
		{http.StatusTooManyRequests, ErrTooManyRequests, models.FailureTransient},
		{http.StatusInternalServerError, ErrInternalServerError, models.FailureTransient},
		{http.StatusBadGateway, ErrBadGateway, models.FailureTransient},
		{http.StatusServiceUnavailable, ErrServiceUnavailable, models.FailureTransient},
		{http.StatusGone, ErrUnexpectedStatus, models.FailurePermanent},
		{http.StatusInsufficientStorage, ErrUnexpectedStatus, models.FailureTransient},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetMemo(context.Background(), "m1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.Equal(t, tt.class, app.Classify(err))
		})
	}
}
