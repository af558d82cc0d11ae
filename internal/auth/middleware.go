// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/models"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"

	// AnonymousUserID is the caller in AuthModeNone.
	AnonymousUserID int64 = 0
)

// Middleware enforces authentication on protected routes.
type Middleware struct {
	jwtManager *JWTManager
	authMode   string
}

// NewMiddleware creates the authentication middleware. jwtManager may be
// nil only in AuthModeNone.
func NewMiddleware(jwtManager *JWTManager, authMode string) (*Middleware, error) {
	switch authMode {
	case AuthModeNone:
	case AuthModeJWT:
		if jwtManager == nil {
			return nil, fmt.Errorf("auth mode %q requires a JWT manager", authMode)
		}
	default:
		return nil, fmt.Errorf("unknown auth mode %q", authMode)
	}
	return &Middleware{jwtManager: jwtManager, authMode: authMode}, nil
}

// Authenticate is chi middleware that rejects unauthenticated requests with
// a 401 error envelope.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == AuthModeNone {
			claims := &Claims{UserID: UserID(AnonymousUserID), Username: "anonymous"}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
			return
		}

		token, err := extractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeUnauthorized(w, err.Error())
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Token validation failed")
			writeUnauthorized(w, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, ClaimsContextKey, claims)
	return logging.ContextWithUserID(ctx, int64(claims.UserID))
}

// extractBearerToken parses "Bearer <token>"; the scheme is case-insensitive.
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("missing token")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}

// ClaimsFromContext returns the authenticated claims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// UserIDFromContext returns the authenticated user id.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	return int64(claims.UserID), true
}

type errorEnvelope struct {
	Success bool             `json:"success"`
	Error   *models.APIError `json:"error"`
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="capstone"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Error: &models.APIError{Code: "UNAUTHORIZED", Message: "Unauthorized: " + message},
	})
}
