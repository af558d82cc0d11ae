// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func captureUser(got *int64, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			id = -1
		}
		*got = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewMiddleware(t *testing.T) {
	manager := newTestManager(t)

	tests := []struct {
		name    string
		manager *JWTManager
		mode    string
		wantErr bool
	}{
		{name: "jwt", manager: manager, mode: AuthModeJWT},
		{name: "none without manager", mode: AuthModeNone},
		{name: "jwt without manager", mode: AuthModeJWT, wantErr: true},
		{name: "unknown mode", manager: manager, mode: "basic", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMiddleware(tt.manager, tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMiddleware() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthenticate_JWT(t *testing.T) {
	manager := newTestManager(t)
	mw, err := NewMiddleware(manager, AuthModeJWT)
	if err != nil {
		t.Fatal(err)
	}
	valid, err := manager.GenerateToken(42, "alice")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   int64
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantUser: 42},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK, wantUser: 42},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + valid + "x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user int64
			var called bool
			handler := mw.Authenticate(captureUser(&user, &called))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !called || user != tt.wantUser {
					t.Errorf("user = %d, called = %v; want %d", user, called, tt.wantUser)
				}
				return
			}
			if called {
				t.Error("handler should not run on 401")
			}
			body := rec.Body.String()
			if !strings.Contains(body, `"success":false`) || !strings.Contains(body, `"UNAUTHORIZED"`) {
				t.Errorf("401 body = %s", body)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("401 should carry WWW-Authenticate")
			}
		})
	}
}

func TestAuthenticate_None(t *testing.T) {
	mw, err := NewMiddleware(nil, AuthModeNone)
	if err != nil {
		t.Fatal(err)
	}

	var user int64 = -5
	var called bool
	handler := mw.Authenticate(captureUser(&user, &called))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called || user != AnonymousUserID {
		t.Errorf("user = %d, called = %v; want anonymous", user, called)
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("UserIDFromContext() should report missing claims")
	}
}
