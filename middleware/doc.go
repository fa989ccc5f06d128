// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Authentication

RequireUser checks an "Authorization: Bearer <token>" session token and
stores the user ID in the request context:

	mux.HandleFunc("GET /dashboard", middleware.RequireUser(cfg.JWTSecret, h.Dashboard))

	userID, ok := middleware.UserID(r.Context())

RequireAdmin guards maintenance routes with the X-Admin-Key header.

# Rate Limiting

RateLimiter keeps one token bucket per client IP (golang.org/x/time/rate):

	limiter := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, cfg.TrustProxy)
	mux.HandleFunc("POST /login", limiter.Limit(h.Login))

Rejected requests get 429. Buckets are keyed on the connected peer's
address; forwarding headers are honoured only when trustProxy is set.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization,
X-Admin-Key.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.CodedErrorResponse(w, http.StatusConflict, "already_voted", "message")

Parse and validate JSON request bodies against a JSON schema:

	var req models.CastVoteRequest
	if err := middleware.ParseValidatedJSON(r, castVoteSchema, &req); err != nil {
		...
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the rate limiter key behind a trusted proxy. RemoteIP returns the
peer address and ignores headers.
*/
package middleware
