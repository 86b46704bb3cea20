// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ml-community/internal/config"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/internal/utils"
	"github.com/MKhiriev/ml-community/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs HS256 tokens with a key loaded once at startup.
// All fields are read-only after construction.
type tokenService struct {
	signKey       string
	issuer        string
	tokenDuration time.Duration

	revocations store.RevocationStorage
	idGenerator *utils.UUIDGenerator

	// now is the clock used both for "iat"/"exp" and for expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// TokenServiceOption customizes a TokenService.
type TokenServiceOption func(*tokenService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

func NewTokenService(cfg config.App, revocations store.RevocationStorage, logger *logger.Logger, opts ...TokenServiceOption) TokenService {
	if revocations == nil {
		revocations = store.NewNoopRevocationStorage()
	}

	s := &tokenService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		revocations:   revocations,
		idGenerator:   utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subject, s.idGenerator.Generate(), s.now(), s.tokenDuration, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		return models.Token{}, classifyTokenError(err)
	}

	if token.ID == "" {
		return token, nil
	}

	revoked, err := s.revocations.IsRevoked(ctx, token.ID)
	if err != nil {
		// fail open: the signature and expiry are already verified
		logger.FromContext(ctx).Err(err).Msg("revocation list lookup failed")
		return token, nil
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

func (s *tokenService) Revoke(ctx context.Context, token models.Token) error {
	if token.ID == "" {
		return nil
	}

	ttl := token.Expiry().Sub(s.now())
	if err := s.revocations.Revoke(ctx, token.ID, ttl); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

// classifyTokenError maps jwt parser errors onto the service sentinels.
// Signature problems are checked first: jwt verifies the signature before
// any claim, so a tampered token never reports an expiry.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return fmt.Errorf("%w: %w", ErrTokenInvalidClaims, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
