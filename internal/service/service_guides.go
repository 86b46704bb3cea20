// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ml-community/internal/access"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/internal/validators"
	"github.com/MKhiriev/ml-community/models"
)

// guideService owns the guide endpoints that need an ownership decision.
type guideService struct {
	guideRepository store.GuideRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewGuideService(guideRepository store.GuideRepository, logger *logger.Logger) GuideService {
	return &guideService{
		guideRepository: guideRepository,
		validator:       validators.NewUserInputValidator(),
		logger:          logger,
	}
}

func (s *guideService) CreateGuide(ctx context.Context, author models.User, request models.GuideRequest) (models.Guide, error) {
	if err := access.RequireTier(author, access.TierUser); err != nil {
		return models.Guide{}, err
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Guide{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	guide, err := s.guideRepository.CreateGuide(ctx, models.Guide{
		AuthorID: author.UserID,
		Title:    strings.TrimSpace(*request.Title),
		Content:  *request.Content,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("author_id", author.UserID).Msg("guide creation failed")
		return models.Guide{}, mapGuideStoreError(err)
	}

	return guide, nil
}

// UpdateGuide is allowed to the author and to moderators.
func (s *guideService) UpdateGuide(ctx context.Context, actor models.User, guideID int64, request models.GuideRequest) (models.Guide, error) {
	guide, err := s.guideRepository.FindGuideByID(ctx, guideID)
	if err != nil {
		return models.Guide{}, mapGuideStoreError(err)
	}

	if err = access.RequireOwnerOr(actor, guide.AuthorID, access.TierElevated); err != nil {
		return models.Guide{}, err
	}

	if err = s.validator.Validate(ctx, request, validators.FieldUpdate); err != nil {
		return models.Guide{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	fields := models.GuideFields{Content: request.Content}
	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		fields.Title = &title
	}

	updated, err := s.guideRepository.UpdateGuide(ctx, guideID, fields)
	if err != nil {
		return models.Guide{}, mapGuideStoreError(err)
	}

	return updated, nil
}

// DeleteGuide is allowed to the author and to moderators.
func (s *guideService) DeleteGuide(ctx context.Context, actor models.User, guideID int64) error {
	guide, err := s.guideRepository.FindGuideByID(ctx, guideID)
	if err != nil {
		return mapGuideStoreError(err)
	}

	if err = access.RequireOwnerOr(actor, guide.AuthorID, access.TierElevated); err != nil {
		return err
	}

	if err = s.guideRepository.DeleteGuide(ctx, guideID); err != nil {
		return mapGuideStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("actor_id", actor.UserID).Int64("guide_id", guideID).Msg("guide deleted")
	return nil
}

func mapGuideStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrGuideNotFound):
		return fmt.Errorf("%w: %w", ErrGuideNotFound, err)
	case errors.Is(err, store.ErrAuthorNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	default:
		return fmt.Errorf("unexpected store error: %w", err)
	}
}
