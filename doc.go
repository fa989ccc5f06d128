// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the statevote API server.

statevote is an online voting service. Registered voters are tied to a US
state; once an administrator verifies them they can vote once in every
open NATIONAL election and in the STATE elections of their own state.
Votes are stored without any link to the voter, and tallies are published
only after an election closes.

# Starting the Server

The server reads CLI flags, then environment variables, then a .env file:

	DATABASE_URL=file:statevote.db JWT_SECRET=... ADMIN_KEY=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --jwt-secret ... --admin-key ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file URL or PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): HMAC key for session tokens
  - ADMIN_KEY (--admin-key): secret for the X-Admin-Key header

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (--token-ttl): session lifetime (default: 1h)
  - RATE_RPS, RATE_BURST (--rate-rps, --rate-burst): per-IP limit on
    register, login and vote (default: 5/s, burst 10)
  - TRUST_PROXY (--trust-proxy): key that limit on X-Forwarded-For; set
    only behind a reverse proxy (default: false)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: eligibility, vote casting, results and turnout
  - handlers: HTTP request handlers (accounts, voting, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, sessions, rate limiting, JSON helpers
  - models: Request/response and domain types
  - auth: Passwords, session tokens, admin key, IDs
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
