// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/ml-community/internal/crypto"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/internal/validators"
	"github.com/MKhiriev/ml-community/models"
)

// dummyPassword is hashed once and verified against for unknown usernames,
// so a failed login costs one Argon2id derivation whether or not the user
// exists.
const dummyPassword = "not-a-real-password-0"

// fallbackDummyCredential is used when hashing dummyPassword fails.
const fallbackDummyCredential = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// authService is the concrete implementation of AuthService.
// It is the only place that turns a bearer token into a stored user.
type authService struct {
	userRepository store.UserRepository
	tokenService   TokenService
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	dummyOnce       sync.Once
	dummyCredential string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
		validator:      validators.NewUserInputValidator(),
		logger:         logger,
	}
}

// Register creates a new account with role User, active and unverified.
//
// Returns the persisted user or:
//   - ErrInvalidData if the username, email or password breaks the input rules.
//   - ErrDuplicateCredential if the email or username is already taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Username = validators.NormalizeUsername(request.Username)
	request.Email = validators.NormalizeEmail(request.Email)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("username", request.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	if err := checkCredentialsAvailable(ctx, a.userRepository, request.Username, request.Email, 0); err != nil {
		return models.User{}, err
	}

	credential, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: credential,
		Role:         models.RoleUser,
		IsActive:     true,
		IsVerified:   false,
		IGN:          request.IGN,
		CurrentRank:  request.CurrentRank,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, mapUserStoreError(err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login checks the password and issues a token. Unknown usernames and wrong
// passwords both return ErrIncorrectCredentials.
//
// Inactive accounts still receive a token; ResolveActiveUser rejects it on use.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	request := models.LoginRequest{Username: validators.NormalizeUsername(username), Password: password}
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(password, a.dummyHash())
		log.Info().Msg("login attempt for unknown user")
		return models.Token{}, ErrIncorrectCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrIncorrectCredentials
	}

	return a.tokenService.Issue(ctx, user.Username)
}

// Refresh issues a fresh token for an already resolved user.
func (a *authService) Refresh(ctx context.Context, user models.User) (models.Token, error) {
	if user.Username == "" {
		return models.Token{}, ErrUnauthenticated
	}
	return a.tokenService.Issue(ctx, user.Username)
}

// Logout revokes the presented token until its natural expiry.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	token, err := a.tokenService.Verify(ctx, tokenString)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return a.tokenService.Revoke(ctx, token)
}

func (a *authService) ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.tokenService.Verify(ctx, tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	username, err := token.Username()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenInvalidClaims)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrUserNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("current user lookup failed")
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	// usernames can be freed and taken again; a token issued before the
	// account existed was issued to an earlier holder of the name
	if issuedBeforeAccount(token, user) {
		logger.FromContext(ctx).Warn().Int64("user_id", user.UserID).Msg("token predates account")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenInvalidClaims)
	}

	return user, nil
}

// issuedBeforeAccount compares at the one second precision of "iat".
func issuedBeforeAccount(token models.Token, user models.User) bool {
	if token.IssuedAt == nil || user.CreatedAt.IsZero() {
		return false
	}
	return token.IssuedAt.Time.Before(user.CreatedAt.Truncate(time.Second))
}

func (a *authService) ResolveActiveUser(ctx context.Context, tokenString string) (models.User, error) {
	user, err := a.ResolveCurrentUser(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveAccount
	}

	return user, nil
}

func (a *authService) dummyHash() string {
	a.dummyOnce.Do(func() {
		credential, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			credential = fallbackDummyCredential
		}
		a.dummyCredential = credential
	})
	return a.dummyCredential
}
