// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_SyncResult(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	result := models.SyncResult{
		Success: false,
		Synced:  3,
		Conflicts: []models.ConflictRecord{{
			EntityID:    "m1",
			Kind:        models.ConflictEditEdit,
			Local:       &models.MemoSnapshot{ID: "m1", Title: "todo", Content: "milk", Tags: []string{}, Version: 1},
			Remote:      &models.MemoSnapshot{ID: "m1", Title: "todo", Content: "bread", Tags: []string{}, Version: 2},
			BaseVersion: 1,
			Status:      models.ConflictUnresolved,
			DetectedAt:  started,
		}},
		Errors: []models.SyncError{{
			OperationID: "op7",
			EntityID:    "m2",
			Kind:        models.OperationUpdate,
			Class:       models.FailureTransient,
			Message:     "network error",
		}},
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, result, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, 3, body["synced"])

	conflicts := body["conflicts"].([]any)
	require.Len(t, conflicts, 1)
	conflict := conflicts[0].(map[string]any)
	assert.Equal(t, "edit_edit", conflict["kind"])
	assert.Equal(t, "unresolved", conflict["status"])
	assert.Equal(t, "bread", conflict["remote"].(map[string]any)["content"])

	syncErrors := body["errors"].([]any)
	require.Len(t, syncErrors, 1)
	assert.Equal(t, "transient", syncErrors[0].(map[string]any)["class"])
}

func TestWriteJSON_DeletedSideOmitted(t *testing.T) {
	w := httptest.NewRecorder()
	rec := models.ConflictRecord{
		EntityID: "m1",
		Kind:     models.ConflictEditDelete,
		Local:    &models.MemoSnapshot{ID: "m1", Title: "todo", Tags: []string{}},
		Status:   models.ConflictUnresolved,
	}

	_, err := WriteJSON(w, []models.ConflictRecord{rec}, http.StatusOK)

	require.NoError(t, err)
	assert.NotContains(t, w.Body.String(), `"remote"`)
	assert.Contains(t, w.Body.String(), `"kind":"edit_delete"`)
}

func TestWriteJSON_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{name: "created memo", data: models.MemoSnapshot{ID: "m1", Title: "t", Tags: []string{"home"}, Version: 0}, status: http.StatusCreated,
			want: `{"id":"m1","title":"t","content":"","tags":["home"],"version":0,"updated_at":"0001-01-01T00:00:00Z"}`},
		{name: "not found", data: map[string]string{"error": "memo not found"}, status: http.StatusNotFound, want: `{"error":"memo not found"}`},
		{name: "nil", data: nil, status: http.StatusOK, want: "null"},
		{name: "empty list", data: []models.CachedMemo{}, status: http.StatusOK, want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			_, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
