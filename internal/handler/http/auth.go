// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/utils"
	"github.com/MKhiriev/ml-community/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// login accepts a JSON body or, like OAuth2 password flow clients send it,
// an urlencoded form with username and password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, err := decodeLoginRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request.Username, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.String(), TokenType: models.TokenTypeBearer}, http.StatusOK)
}

func decodeLoginRequest(w http.ResponseWriter, r *http.Request) (models.LoginRequest, error) {
	var request models.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		r.Body = http.MaxBytesReader(w, r.Body, utils.MaxRequestBodySize)
		if err := r.ParseForm(); err != nil {
			return request, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		request.Username = r.PostForm.Get("username")
		request.Password = r.PostForm.Get("password")
		return request, nil
	}

	if err := utils.DecodeJSON(w, r, &request); err != nil {
		return request, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return request, nil
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Refresh(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.String(), TokenType: models.TokenTypeBearer}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	tokenString, err := bearerToken(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), tokenString); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Successfully logged out"}, http.StatusOK)
}
