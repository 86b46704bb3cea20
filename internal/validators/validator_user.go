// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/ml-community/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldIGN         = "ign"
	FieldCurrentRank = "current_rank"
	FieldTitle       = "title"
	FieldContent     = "content"

	// FieldUpdate switches a request into partial-update mode: only the
	// fields that are set get checked, and at least one must be set.
	FieldUpdate = "update"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 128
	maxProfileField   = 100
	maxRankLength     = 50
	maxTitleLength    = 200
	maxContentLength  = 100_000
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
)

// NormalizeUsername trims surrounding whitespace.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Stored e-mails are always in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserInputValidator struct {
}

func NewUserInputValidator() Validator {
	return &UserInputValidator{}
}

func (v *UserInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, *value)

	case models.GuideRequest:
		return v.validateGuideRequest(ctx, value, fields...)
	case *models.GuideRequest:
		return v.validateGuideRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserInputValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldIGN, FieldCurrentRank}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		case FieldIGN:
			if utf8.RuneCountInString(request.IGN) > maxProfileField {
				return ErrProfileFieldLong
			}
		case FieldCurrentRank:
			if utf8.RuneCountInString(request.CurrentRank) > maxRankLength {
				return ErrProfileFieldLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Login only rejects empty input; the credential check itself decides the rest.
func (v *UserInputValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if NormalizeUsername(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserInputValidator) validateUpdateUserRequest(_ context.Context, request models.UpdateUserRequest) error {
	if request.Username == nil && request.Email == nil && request.Password == nil &&
		request.IGN == nil && request.CurrentRank == nil {
		return ErrNoFieldsToUpdate
	}

	if request.Username != nil {
		if err := validateUsername(*request.Username); err != nil {
			return err
		}
	}
	if request.Email != nil {
		if err := validateEmail(*request.Email); err != nil {
			return err
		}
	}
	if request.Password != nil {
		if err := validatePassword(*request.Password); err != nil {
			return err
		}
	}
	if request.IGN != nil && utf8.RuneCountInString(*request.IGN) > maxProfileField {
		return ErrProfileFieldLong
	}
	if request.CurrentRank != nil && utf8.RuneCountInString(*request.CurrentRank) > maxRankLength {
		return ErrProfileFieldLong
	}

	return nil
}

func (v *UserInputValidator) validateGuideRequest(_ context.Context, request models.GuideRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == nil {
				return ErrEmptyTitle
			}
			if err := validateTitle(*request.Title); err != nil {
				return err
			}
		case FieldContent:
			if request.Content == nil {
				return ErrEmptyContent
			}
			if err := validateContent(*request.Content); err != nil {
				return err
			}
		case FieldUpdate:
			if request.Title == nil && request.Content == nil {
				return ErrNoFieldsToUpdate
			}
			if request.Title != nil {
				if err := validateTitle(*request.Title); err != nil {
					return err
				}
			}
			if request.Content != nil {
				if err := validateContent(*request.Content); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	username = NormalizeUsername(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if n := len(username); n < minUsernameLength || n > maxUsernameLength {
		return ErrUsernameLength
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameCharset
	}
	return nil
}

func validateEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if n := utf8.RuneCountInString(password); n < minPasswordLength || n > maxPasswordLength {
		return ErrPasswordLength
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return ErrPasswordStrength
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return ErrContentTooLong
	}
	return nil
}
