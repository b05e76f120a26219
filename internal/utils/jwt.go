// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the part of a bearer token the client inspects.
type TokenClaims struct {
	// Subject is the "sub" claim, the server-side user id.
	Subject string
	// ExpiresAt is the "exp" claim; zero when the token has none.
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseBearerToken reads the claims of a JWT without verifying its
// signature. The client never holds the signing key; the server stays the
// authority and this is used only to avoid sending a token that is known
// to be expired.
//
// Example usage:
//
//	claims, err := utils.ParseBearerToken(raw)
//	if err == nil && claims.Expired(time.Now()) {
//	    // ask the user to log in again
//	}
func ParseBearerToken(raw string) (TokenClaims, error) {
	if raw == "" {
		return TokenClaims{}, errors.New("empty token")
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	out := TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
