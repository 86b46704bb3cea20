// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type returned alongside every access token.
const TokenTypeBearer = "bearer"

// Token wraps a JWT bearer token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The "sub" claim holds the
// username and "jti" the identifier used by the revocation list.
type Token struct {
	// Token is the underlying JWT token. Excluded from JSON because only
	// the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation
	// (header.payload.signature).
	SignedString string `json:"-"`
}

// Username returns the "sub" claim. An empty subject is an error.
func (t *Token) Username() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("empty subject")
	}
	return subject, nil
}

// Expiry returns the absolute expiry instant or the zero time when the
// token carries no "exp" claim.
func (t *Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
