// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ml-community/internal/access"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/service"
	"github.com/MKhiriev/ml-community/internal/utils"
	"github.com/MKhiriev/ml-community/models"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is ordered: the first match wins. Unauthenticated comes
// before the not-found errors it may wrap (a token whose user was deleted).
var errorMappings = []errorMapping{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{ErrNoUserInContext, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{service.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{service.ErrIncorrectCredentials, http.StatusUnauthorized, "INCORRECT_CREDENTIALS"},

	{service.ErrInactiveAccount, http.StatusForbidden, "INACTIVE_ACCOUNT"},
	{access.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},

	{service.ErrDuplicateCredential, http.StatusConflict, "DUPLICATE_CREDENTIAL"},

	{ErrInvalidJSON, http.StatusBadRequest, "INVALID_DATA"},
	{ErrInvalidPathParam, http.StatusBadRequest, "INVALID_DATA"},
	{service.ErrInvalidData, http.StatusBadRequest, "INVALID_DATA"},

	{service.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{service.ErrGuideNotFound, http.StatusNotFound, "GUIDE_NOT_FOUND"},
}

func mappingFromError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return errorMapping{status: http.StatusInternalServerError, code: "INTERNAL_ERROR"}
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

// writeError logs err and responds with the JSON error envelope. Only
// validation errors expose their full message; everything else is reduced to
// its sentinel so storage details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	m := mappingFromError(err)

	var message string
	switch {
	case m.status == http.StatusBadRequest:
		message = err.Error()
	case m.target != nil:
		message = m.target.Error()
	default:
		message = http.StatusText(m.status)
	}

	if m.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("path", r.URL.Path).Int("status", m.status).Msg("request rejected")
	}

	if m.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: models.ErrorBody{
		Code:       m.code,
		Message:    message,
		StatusCode: m.status,
		Path:       r.URL.Path,
	}}, m.status)
}
