// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a sentinel error. 5xx, 401,
// 403 and 429 are transient ([app.ErrNetwork]); 404 and 409 carry
// [app.ErrNotFound] and [app.ErrConflict] so the sync engine can run
// conflict detection; every other 4xx is a permanent rejection
// ([app.ErrValidation]).
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp.Body())
	if body == "" {
		body = http.StatusText(code)
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrBadRequest, app.ErrValidation, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrUnauthorized, app.ErrNetwork, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrForbidden, app.ErrNetwork, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrNotFound, app.ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w: %s", ErrConflict, app.ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w: %s", ErrUnprocessableEntity, app.ErrValidation, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrTooManyRequests, app.ErrNetwork, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrInternalServerError, app.ErrNetwork, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrBadGateway, app.ErrNetwork, body)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w: %s", ErrServiceUnavailable, app.ErrNetwork, body)
	}

	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w %d: %w: %s", ErrUnexpectedStatus, code, app.ErrNetwork, body)
	}
	return fmt.Errorf("%w %d: %w: %s", ErrUnexpectedStatus, code, app.ErrValidation, body)
}

// errorBody extracts the "error" field the memo server puts in its JSON
// error bodies, falling back to the raw text.
func errorBody(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
