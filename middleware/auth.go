// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielhkuo/statevote/auth"
)

type contextKey int

const userIDKey contextKey = iota

// UserID returns the authenticated user ID stored by RequireUser
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID returns a context carrying userID, as RequireUser would
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// RequireUser rejects requests without a valid "Authorization: Bearer"
// session token and passes the user ID on through the request context
func RequireUser(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		userID, err := auth.ParseToken(strings.TrimSpace(token), secret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

// RequireAdmin rejects requests whose X-Admin-Key header doesn't match
// the configured key
func RequireAdmin(adminKey string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get("X-Admin-Key")
		if provided == "" {
			ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
			return
		}
		if err := auth.ValidateAdminKey(provided, adminKey); err != nil {
			ErrorResponse(w, http.StatusForbidden, "Invalid admin key")
			return
		}
		next(w, r)
	}
}
