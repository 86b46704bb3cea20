// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/ml-community/internal/utils"
	"github.com/MKhiriev/ml-community/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidPathParam, raw)
	}
	return id, nil
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	actor, userID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	var request models.UpdateUserRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), actor, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, userID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), actor, userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted successfully"}, http.StatusOK)
}

func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	actor, userID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.SetActive(r.Context(), actor, userID, active)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	actor, userID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.Verify(r.Context(), actor, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	actor, userID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	// an unknown role name fails here, inside Role.UnmarshalText
	var request models.ChangeRoleRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.ChangeRole(r.Context(), actor, userID, request.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// actorAndTarget reads the authenticated user and the {id} parameter. It
// writes the error response itself and reports false on failure.
func (h *Handler) actorAndTarget(w http.ResponseWriter, r *http.Request) (models.User, int64, bool) {
	actor, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return models.User{}, 0, false
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return models.User{}, 0, false
	}

	return actor, id, true
}
