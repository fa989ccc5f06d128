// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the statevote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Public:

	GET  /health          - Liveness
	GET  /                - Turnout percentage
	GET  /results         - All elections, tallies for closed ones
	GET  /results/{slug}  - One election's result

Accounts (register and login are rate limited per IP):

	POST /register - Create an unverified account
	POST /login    - Exchange credentials for a session token
	GET  /me       - Profile (session)

Voting (requires "Authorization: Bearer <token>"):

	GET  /dashboard               - Profile and eligible elections
	GET  /elections/{slug}/ballot - Election and candidates
	POST /elections/{slug}/vote   - Cast a vote (rate limited)

Maintenance (requires X-Admin-Key):

	POST /admin/elections                   - Create election
	POST /admin/elections/{slug}/candidates - Add candidate before start
	POST /admin/users/{id}/verify           - Set verification

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
