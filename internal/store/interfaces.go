// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/ml-community/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store. Lookups return [ErrUserNotFound]
// when no row matches; writes that collide with an existing username or
// email return [ErrUserAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUserFields applies the non-nil fields and returns the updated row.
	UpdateUserFields(ctx context.Context, userID int64, fields models.UserFields) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// GuideRepository stores hero build guides.
type GuideRepository interface {
	CreateGuide(ctx context.Context, guide models.Guide) (models.Guide, error)
	FindGuideByID(ctx context.Context, guideID int64) (models.Guide, error)
	UpdateGuide(ctx context.Context, guideID int64, fields models.GuideFields) (models.Guide, error)
	DeleteGuide(ctx context.Context, guideID int64) error
}

// RevocationStorage remembers identifiers of tokens that were revoked
// before their natural expiry.
type RevocationStorage interface {
	// Revoke marks tokenID as revoked for ttl. A non-positive ttl is a no-op
	// because the token is already expired.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
