// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrUsernameLength   = errors.New("username must be between 3 and 50 characters long")
	ErrUsernameCharset  = errors.New("username can only contain letters, numbers, underscores and hyphens")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrEmailTooLong     = errors.New("email too long")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordLength   = errors.New("password must be between 8 and 128 characters long")
	ErrPasswordStrength = errors.New("password must contain at least one letter and one number")
	ErrProfileFieldLong = errors.New("profile field too long")

	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTitleTooLong     = errors.New("title too long")
	ErrEmptyContent     = errors.New("content cannot be empty")
	ErrContentTooLong   = errors.New("content too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
