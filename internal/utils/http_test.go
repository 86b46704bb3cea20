// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ml-community/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.TokenResponse{AccessToken: "abc", TokenType: models.TokenTypeBearer}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"access_token":"abc","token_type":"bearer"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.MessageResponse{Message: "not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_UserHidesPasswordHash(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.User{UserID: 1, Username: "alice", PasswordHash: "$argon2id$secret"}, http.StatusOK)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if strings.Contains(w.Body.String(), "argon2id") {
		t.Fatalf("password hash leaked into response: %s", w.Body.String())
	}

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["username"] != "alice" {
		t.Errorf("expected username alice, got %v", decoded["username"])
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"username":"alice","password":"secret123"}`},
		{name: "unknown field", body: `{"username":"alice","admin":true}`, wantErr: true},
		{name: "malformed", body: `{"username":`, wantErr: true},
		{name: "trailing document", body: `{"username":"a"}{"username":"b"}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
		{name: "too large", body: `{"username":"` + strings.Repeat("a", MaxRequestBodySize) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var req models.LoginRequest
			err := DecodeJSON(w, r, &req)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Username != "alice" || req.Password != "secret123" {
				t.Errorf("unexpected request %+v", req)
			}
		})
	}
}
