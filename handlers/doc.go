// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the statevote API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AccountHandler: Registration, login and the profile card
  - VotingHandler: Dashboard, ballot and vote casting
  - ResultsHandler: Turnout and election results
  - AdminHandler: Elections, candidates and voter verification

Handlers are created via constructor functions that accept *sql.DB and Config:

	votingHandler := handlers.NewVotingHandler(db, cfg)

Decisions about who may vote and what gets counted live in the voting
package; handlers decode requests, call the engine and map its reason
codes onto HTTP statuses:

	not_found          404
	not_verified       403
	not_eligible       403
	not_active         409
	already_voted      409
	invalid_selection  422
	internal           500

# Request Validation

Request bodies are checked against JSON schemas (schemas.go) before they
are decoded. A vote body that fails its schema is treated as a vote with
no candidate, so the election and voter checks still run first and the
response is invalid_selection.

# Election Lifecycle

Elections are created with a fixed window:

	POST /admin/elections                   → CreateElection
	POST /admin/elections/{slug}/candidates → AddCandidate (before start_time only)

Voters then see them on the dashboard while the window is open, and the
tally appears under /results once end_time passes.
*/
package handlers
