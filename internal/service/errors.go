// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Token verification failures. Each one is also wrapped in
// ErrUnauthenticated by the AuthService resolvers.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidClaims    = errors.New("token claims are invalid")
	ErrTokenRevoked          = errors.New("token is revoked")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)

var (
	ErrUnauthenticated      = errors.New("could not validate credentials")
	ErrInactiveAccount      = errors.New("inactive user")
	ErrIncorrectCredentials = errors.New("incorrect username or password")
	ErrDuplicateCredential  = errors.New("username or email already registered")
	ErrInvalidData          = errors.New("invalid data provided")

	ErrUserNotFound  = errors.New("user not found")
	ErrGuideNotFound = errors.New("guide not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
