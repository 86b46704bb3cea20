// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/models"
	"github.com/jackc/pgerrcode"
)

// guideRepository is the PostgreSQL-backed implementation of [GuideRepository].
type guideRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewGuideRepository(db *DB, logger *logger.Logger) GuideRepository {
	logger.Debug().Msg("creating guide repository")
	return &guideRepository{
		db:     db,
		logger: logger,
	}
}

func scanGuide(row rowScanner) (models.Guide, error) {
	var guide models.Guide
	err := row.Scan(
		&guide.GuideID,
		&guide.AuthorID,
		&guide.Title,
		&guide.Content,
		&guide.CreatedAt,
		&guide.UpdatedAt,
	)
	return guide, err
}

func (r *guideRepository) CreateGuide(ctx context.Context, guide models.Guide) (models.Guide, error) {
	log := logger.FromContext(ctx)

	created, err := scanGuide(r.db.QueryRowContext(ctx, createGuide, guide.AuthorID, guide.Title, guide.Content))
	if err != nil {
		log.Err(err).Str("func", "*guideRepository.CreateGuide").Int64("author_id", guide.AuthorID).Msg("error creating guide")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Guide{}, ErrAuthorNotFound
		default:
			return models.Guide{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *guideRepository) FindGuideByID(ctx context.Context, guideID int64) (models.Guide, error) {
	log := logger.FromContext(ctx)

	guide, err := scanGuide(r.db.QueryRowContext(ctx, findGuideByID, guideID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Guide{}, ErrGuideNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*guideRepository.FindGuideByID").Int64("guide_id", guideID).Msg("error finding guide")
		return models.Guide{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return guide, nil
}

func (r *guideRepository) UpdateGuide(ctx context.Context, guideID int64, fields models.GuideFields) (models.Guide, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateGuideQuery(ctx, guideID, fields)
	if err != nil {
		return models.Guide{}, err
	}

	guide, err := scanGuide(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Guide{}, ErrGuideNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*guideRepository.UpdateGuide").Int64("guide_id", guideID).Msg("error updating guide")
		return models.Guide{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return guide, nil
}

func (r *guideRepository) DeleteGuide(ctx context.Context, guideID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteGuide, guideID)
	if err != nil {
		log.Err(err).Str("func", "*guideRepository.DeleteGuide").Int64("guide_id", guideID).Msg("error deleting guide")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrGuideNotFound
	}

	return nil
}
