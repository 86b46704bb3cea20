// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/api/v1/health"},
	{http.MethodGet, "/api/v1/version"},
	{http.MethodPost, "/api/v1/auth/register"},
	{http.MethodPost, "/api/v1/auth/login"},
	{http.MethodPost, "/api/v1/auth/logout"},
	{http.MethodGet, "/api/v1/auth/me"},
	{http.MethodPost, "/api/v1/auth/refresh"},
	{http.MethodGet, "/api/v1/users/{id}"},
	{http.MethodPut, "/api/v1/users/{id}"},
	{http.MethodDelete, "/api/v1/users/{id}"},
	{http.MethodPost, "/api/v1/users/{id}/activate"},
	{http.MethodPost, "/api/v1/users/{id}/deactivate"},
	{http.MethodPost, "/api/v1/users/{id}/verify"},
	{http.MethodPost, "/api/v1/users/{id}/role"},
	{http.MethodPost, "/api/v1/guides"},
	{http.MethodPut, "/api/v1/guides/{id}"},
	{http.MethodDelete, "/api/v1/guides/{id}"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	registered := map[routeCase]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[routeCase{method, route}] = true
		return nil
	})
	require.NoError(t, err)

	for _, rc := range expectedRoutes {
		assert.True(t, registered[rc], "route %s %s is not registered", rc.method, rc.path)
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	protected := []routeCase{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/auth/refresh"},
		{http.MethodPut, "/api/v1/users/1"},
		{http.MethodDelete, "/api/v1/users/1"},
		{http.MethodPost, "/api/v1/users/1/role"},
		{http.MethodPost, "/api/v1/guides"},
		{http.MethodDelete, "/api/v1/guides/1"},
	}

	for _, rc := range protected {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rr := doRequest(t, router, rc.method, rc.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := doRequest(t, h.Init(), http.MethodGet, "/api/v1/heroes", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := doRequest(t, h.Init(), http.MethodGet, "/api/v1/auth/me", "", map[string]string{traceIDHeader: "trace-1"})
	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))
}
