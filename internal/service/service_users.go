// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ml-community/internal/access"
	"github.com/MKhiriev/ml-community/internal/crypto"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/internal/validators"
	"github.com/MKhiriev/ml-community/models"
)

// userService manages accounts on behalf of an already resolved actor.
// Every mutating method runs the access gate before touching the store.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserInputValidator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}
	return user, nil
}

// UpdateProfile lets the owner of the profile, or a moderator, change the
// public fields, the credentials and the password. Admin profiles are
// edited by their owner or another admin.
func (s *userService) UpdateProfile(ctx context.Context, actor models.User, userID int64, request models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := access.RequireOwnerOr(actor, userID, access.TierElevated); err != nil {
		log.Warn().Int64("actor_id", actor.UserID).Int64("user_id", userID).Msg("profile update denied")
		return models.User{}, err
	}

	if actor.UserID != userID {
		target, err := s.userRepository.FindUserByID(ctx, userID)
		if err != nil {
			return models.User{}, mapUserStoreError(err)
		}
		if err = access.CanManageUser(actor, target); err != nil {
			log.Warn().Int64("actor_id", actor.UserID).Int64("user_id", userID).Msg("profile update denied")
			return models.User{}, err
		}
	}

	if request.Username != nil {
		username := validators.NormalizeUsername(*request.Username)
		request.Username = &username
	}
	if request.Email != nil {
		email := validators.NormalizeEmail(*request.Email)
		request.Email = &email
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	var username, email string
	if request.Username != nil {
		username = *request.Username
	}
	if request.Email != nil {
		email = *request.Email
	}
	if err := checkCredentialsAvailable(ctx, s.userRepository, username, email, userID); err != nil {
		return models.User{}, err
	}

	fields := models.UserFields{
		Username:    request.Username,
		Email:       request.Email,
		IGN:         request.IGN,
		CurrentRank: request.CurrentRank,
	}
	if request.Password != nil {
		credential, err := s.hasher.Hash(*request.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		fields.PasswordHash = &credential
	}

	updated, err := s.userRepository.UpdateUserFields(ctx, userID, fields)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, mapUserStoreError(err)
	}

	return updated, nil
}

// SetActive activates or deactivates an account. Only moderators and admins
// may do so, and only admins may do it to an admin. It is the only way an
// account changes its active state.
func (s *userService) SetActive(ctx context.Context, actor models.User, userID int64, active bool) (models.User, error) {
	if err := s.authorizeStatusChange(ctx, actor, userID); err != nil {
		return models.User{}, err
	}

	updated, err := s.userRepository.UpdateUserFields(ctx, userID, models.UserFields{IsActive: &active})
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Int64("actor_id", actor.UserID).
		Int64("user_id", userID).
		Bool("is_active", active).
		Msg("account state changed")
	return updated, nil
}

func (s *userService) Verify(ctx context.Context, actor models.User, userID int64) (models.User, error) {
	if err := s.authorizeStatusChange(ctx, actor, userID); err != nil {
		return models.User{}, err
	}

	verified := true
	updated, err := s.userRepository.UpdateUserFields(ctx, userID, models.UserFields{IsVerified: &verified})
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	return updated, nil
}

// authorizeStatusChange checks the actor's tier before loading the target,
// then applies the target-aware rule of access.CanChangeStatus.
func (s *userService) authorizeStatusChange(ctx context.Context, actor models.User, userID int64) error {
	if err := access.RequireTier(actor, access.TierElevated); err != nil {
		return err
	}

	target, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return mapUserStoreError(err)
	}

	if err = access.CanChangeStatus(actor, target); err != nil {
		logger.FromContext(ctx).Warn().
			Int64("actor_id", actor.UserID).
			Int64("user_id", userID).
			Msg("account state change denied")
		return err
	}
	return nil
}

// ChangeRole assigns role to the target account. Granting Admin, or changing
// the role of an Admin, needs Admin; any other change needs a moderator.
func (s *userService) ChangeRole(ctx context.Context, actor models.User, userID int64, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidData, models.ErrUnknownRole)
	}

	if err := access.RequireTier(actor, access.TierElevated); err != nil {
		return models.User{}, err
	}

	target, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	if err = access.CanAssignRole(actor, target, role); err != nil {
		return models.User{}, err
	}

	updated, err := s.userRepository.UpdateUserFields(ctx, userID, models.UserFields{Role: &role})
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Int64("actor_id", actor.UserID).
		Int64("user_id", userID).
		Stringer("role", role).
		Msg("role changed")
	return updated, nil
}

// DeleteUser hard-deletes an account and, through the foreign key, its guides.
func (s *userService) DeleteUser(ctx context.Context, actor models.User, userID int64) error {
	if err := access.RequireTier(actor, access.TierAdmin); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return mapUserStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("actor_id", actor.UserID).Int64("user_id", userID).Msg("user deleted")
	return nil
}

// checkCredentialsAvailable returns ErrDuplicateCredential when email or
// username belongs to an account other than selfID. Empty values are skipped.
// The email is checked first.
func checkCredentialsAvailable(ctx context.Context, repo store.UserRepository, username, email string, selfID int64) error {
	if email != "" {
		existing, err := repo.FindUserByEmail(ctx, email)
		switch {
		case err == nil && existing.UserID != selfID:
			return fmt.Errorf("%w: email", ErrDuplicateCredential)
		case err != nil && !errors.Is(err, store.ErrUserNotFound):
			return fmt.Errorf("user search by email failed: %w", err)
		}
	}

	if username != "" {
		existing, err := repo.FindUserByUsername(ctx, username)
		switch {
		case err == nil && existing.UserID != selfID:
			return fmt.Errorf("%w: username", ErrDuplicateCredential)
		case err != nil && !errors.Is(err, store.ErrUserNotFound):
			return fmt.Errorf("user search by username failed: %w", err)
		}
	}

	return nil
}

func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.Is(err, store.ErrUserAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateCredential, err)
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	default:
		return fmt.Errorf("unexpected store error: %w", err)
	}
}
