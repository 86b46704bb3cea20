// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/ml-community/internal/utils"
	"github.com/MKhiriev/ml-community/models"
)

type resolveUserFunc func(ctx context.Context, tokenString string) (models.User, error)

// auth resolves the bearer token into the current user and stores it in the
// request context under [utils.UserCtxKey]. Inactive accounts pass.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.authenticate(h.services.AuthService.ResolveCurrentUser, next)
}

// authActive is auth that answers 403 for inactive accounts.
func (h *Handler) authActive(next http.Handler) http.Handler {
	return h.authenticate(h.services.AuthService.ResolveActiveUser, next)
}

// authenticate rejects the request with 401 when the header is missing or
// malformed or when resolve fails with an authentication error.
func (h *Handler) authenticate(resolve resolveUserFunc, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := resolve(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}
