// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IGN         string `json:"ign,omitempty"`
	CurrentRank string `json:"current_rank,omitempty"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial profile update. Nil fields stay unchanged.
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	IGN         *string `json:"ign,omitempty"`
	CurrentRank *string `json:"current_rank,omitempty"`
}

// ChangeRoleRequest is the body of POST /api/v1/users/{id}/role.
type ChangeRoleRequest struct {
	Role Role `json:"role"`
}

// GuideRequest carries the editable part of a guide. On update nil fields
// stay unchanged; on creation both are required.
type GuideRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
