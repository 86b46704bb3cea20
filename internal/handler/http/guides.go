// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/ml-community/internal/utils"
	"github.com/MKhiriev/ml-community/models"
)

func (h *Handler) createGuide(w http.ResponseWriter, r *http.Request) {
	author, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.GuideRequest
	if err = utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	guide, err := h.services.GuideService.CreateGuide(r.Context(), author, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, guide, http.StatusCreated)
}

func (h *Handler) updateGuide(w http.ResponseWriter, r *http.Request) {
	actor, guideID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	var request models.GuideRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	guide, err := h.services.GuideService.UpdateGuide(r.Context(), actor, guideID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, guide, http.StatusOK)
}

func (h *Handler) deleteGuide(w http.ResponseWriter, r *http.Request) {
	actor, guideID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.GuideService.DeleteGuide(r.Context(), actor, guideID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Guide deleted successfully"}, http.StatusOK)
}
