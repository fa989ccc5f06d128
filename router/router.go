// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/statevote/cliparse"
	"github.com/danielhkuo/statevote/handlers"
	"github.com/danielhkuo/statevote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// One limiter shared by the write endpoints
	limiter := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, cfg.TrustProxy)

	user := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireUser(cfg.JWTSecret, h)
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAdmin(cfg.AdminKey, h)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Home (public turnout)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(resultsHandler.Home))

	// Accounts
	mux.HandleFunc("POST /register", middleware.WithLogging(limiter.Limit(accountHandler.Register)))
	mux.HandleFunc("POST /login", middleware.WithLogging(limiter.Limit(accountHandler.Login)))
	mux.HandleFunc("GET /me", middleware.WithLogging(user(accountHandler.Me)))

	// Voting (requires session)
	mux.HandleFunc("GET /dashboard", middleware.WithLogging(user(votingHandler.Dashboard)))
	mux.HandleFunc("GET /elections/{slug}/ballot", middleware.WithLogging(user(votingHandler.GetBallot)))
	mux.HandleFunc("POST /elections/{slug}/vote", middleware.WithLogging(limiter.Limit(user(votingHandler.CastVote))))

	// Results (public, sealed until close)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/{slug}", middleware.WithLogging(resultsHandler.GetElectionResults))

	// Maintenance (requires X-Admin-Key)
	mux.HandleFunc("POST /admin/elections", middleware.WithLogging(admin(adminHandler.CreateElection)))
	mux.HandleFunc("POST /admin/elections/{slug}/candidates", middleware.WithLogging(admin(adminHandler.AddCandidate)))
	mux.HandleFunc("POST /admin/users/{id}/verify", middleware.WithLogging(admin(adminHandler.VerifyUser)))

	return mux
}
