// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a community account used for authentication and
// authorization. PasswordHash must never leave trusted boundaries.
type User struct {
	// UserID is the immutable identifier assigned by the database.
	UserID int64 `json:"id"`

	// Username is the unique login name. It is also the "sub" claim of
	// every token issued to the user.
	Username string `json:"username"`

	// Email is the unique, lower-cased e-mail address.
	Email string `json:"email"`

	// PasswordHash is the argon2id encoded credential. It is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	Role       Role `json:"role"`
	IsActive   bool `json:"is_active"`
	IsVerified bool `json:"is_verified"`

	// IGN is the in-game name shown on the profile page.
	IGN         string `json:"ign,omitempty"`
	CurrentRank string `json:"current_rank,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFields is a partial update of a [User]. Only non-nil fields are
// written to the store.
type UserFields struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *Role
	IsActive     *bool
	IsVerified   *bool
	IGN          *string
	CurrentRank  *string
}

// IsEmpty reports whether the update carries no field at all.
func (f UserFields) IsEmpty() bool {
	return f.Username == nil &&
		f.Email == nil &&
		f.PasswordHash == nil &&
		f.Role == nil &&
		f.IsActive == nil &&
		f.IsVerified == nil &&
		f.IGN == nil &&
		f.CurrentRank == nil
}
