// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the community backend.
//
// It wires chi routes under /api/v1, resolves the bearer token of every
// protected request into a [models.User] stored in the request context, and
// maps service errors onto HTTP status codes in one place (errors_mapper.go).
// Authorization decisions are made by the services through the access gate.
package http
