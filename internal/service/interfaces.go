// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/ml-community/models"
)

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue creates a token for subject that expires one TTL from now.
	Issue(ctx context.Context, subject string) (models.Token, error)

	// Verify checks signature, algorithm, issuer and expiry (in that
	// order of precedence) and then the revocation list.
	Verify(ctx context.Context, tokenString string) (models.Token, error)

	// Revoke puts the token on the revocation list until it expires.
	Revoke(ctx context.Context, token models.Token) error
}

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, username, password string) (models.Token, error)
	Refresh(ctx context.Context, user models.User) (models.Token, error)
	Logout(ctx context.Context, tokenString string) error

	// ResolveCurrentUser maps a bearer token to the stored user it was
	// issued for. Every failure matches ErrUnauthenticated.
	ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error)

	// ResolveActiveUser is ResolveCurrentUser that also rejects inactive
	// accounts with ErrInactiveAccount.
	ResolveActiveUser(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, actor models.User, userID int64, request models.UpdateUserRequest) (models.User, error)
	SetActive(ctx context.Context, actor models.User, userID int64, active bool) (models.User, error)
	Verify(ctx context.Context, actor models.User, userID int64) (models.User, error)
	ChangeRole(ctx context.Context, actor models.User, userID int64, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, actor models.User, userID int64) error
}

type GuideService interface {
	CreateGuide(ctx context.Context, author models.User, request models.GuideRequest) (models.Guide, error)
	UpdateGuide(ctx context.Context, actor models.User, guideID int64, request models.GuideRequest) (models.Guide, error)
	DeleteGuide(ctx context.Context, actor models.User, guideID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
