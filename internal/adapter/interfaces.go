// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the ml-community REST API.
//
// [APIClient] hides the transport from command line tools. Failed calls are
// mapped to the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/ml-community/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient talks to the authentication endpoints of the server.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Register creates an account and returns the public user record.
	// It does not log in.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for an access token and stores it.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Refresh replaces the stored token with a freshly issued one.
	Refresh(ctx context.Context) (models.TokenResponse, error)

	// Logout revokes the stored token on the server and forgets it.
	Logout(ctx context.Context) error

	Health(ctx context.Context) (models.HealthResponse, error)
}
