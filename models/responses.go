// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the envelope every failed API call responds with.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a single API failure.
type ErrorBody struct {
	// Code is a stable machine readable identifier (e.g. "UNAUTHENTICATED").
	Code string `json:"code"`

	// Message is a human readable description safe to show to end users.
	Message string `json:"message"`

	StatusCode int    `json:"status_code"`
	Path       string `json:"path"`
}

// MessageResponse is returned by operations that have no resource to show.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
