// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. Each one is
// also wrapped together with the matching [app] taxonomy error, so callers
// may match either the precise status or the failure class.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("memo not found on server")
	ErrConflict            = errors.New("version conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTokenExpired is returned without a network call when the stored
	// bearer token is past its exp claim.
	ErrTokenExpired = errors.New("bearer token expired")

	// ErrInvalidResponse means a 2xx response body could not be decoded.
	ErrInvalidResponse = errors.New("invalid server response")
)
