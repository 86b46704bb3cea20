// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ml-community/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, username, email, password_hash, role, is_active, is_verified, ign, current_rank, created_at, updated_at`

	createUser = `INSERT INTO users (username, email, password_hash, role, is_active, is_verified, ign, current_rank)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	guideColumns = `id, author_id, title, content, created_at, updated_at`

	createGuide = `INSERT INTO guides (author_id, title, content)
    VALUES ($1, $2, $3)
    RETURNING ` + guideColumns + `;`

	findGuideByID = `SELECT ` + guideColumns + `
    FROM guides
    WHERE id = $1;`

	deleteGuide = `DELETE FROM guides WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds an UPDATE for the non-nil fields of update.
// updated_at is always refreshed and the full row is returned.
func buildUpdateUserQuery(_ context.Context, userID int64, update models.UserFields) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.IsVerified != nil {
		builder = builder.Set("is_verified", *update.IsVerified)
	}
	if update.IGN != nil {
		builder = builder.Set("ign", *update.IGN)
	}
	if update.CurrentRank != nil {
		builder = builder.Set("current_rank", *update.CurrentRank)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateGuideQuery builds an UPDATE for the non-nil fields of update.
func buildUpdateGuideQuery(_ context.Context, guideID int64, update models.GuideFields) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.Guide{}.TableName())

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": guideID}).
		Suffix("RETURNING " + guideColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
