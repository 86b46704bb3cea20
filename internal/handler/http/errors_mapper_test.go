// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ml-community/internal/access"
	"github.com/MKhiriev/ml-community/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"deleted subject", fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrUserNotFound), http.StatusUnauthorized},
		{"incorrect credentials", service.ErrIncorrectCredentials, http.StatusUnauthorized},
		{"inactive", service.ErrInactiveAccount, http.StatusForbidden},
		{"denied", &access.DeniedError{Reason: access.ReasonUnknownRole}, http.StatusForbidden},
		{"wrapped denied", fmt.Errorf("update: %w", &access.DeniedError{}), http.StatusForbidden},
		{"duplicate", service.ErrDuplicateCredential, http.StatusConflict},
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest},
		{"invalid data", service.ErrInvalidData, http.StatusBadRequest},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"guide not found", service.ErrGuideNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	rr := httptest.NewRecorder()

	writeError(rr, req, errors.New("pq: connection refused to 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
	body := decodeError(t, rr)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.NotContains(t, rr.Body.String(), "10.0.0.5")
}

func TestWriteError_ReducesToSentinel(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rr := httptest.NewRecorder()

	writeError(rr, req, fmt.Errorf("%w: %w: lookup user \"ghost\"", service.ErrUnauthenticated, service.ErrUserNotFound))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.Equal(t, service.ErrUnauthenticated.Error(), decodeError(t, rr).Message)
}
