// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present. Values
already in the process environment are never overwritten by it.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - JWTSecret: HMAC key for session tokens (required)
  - AdminKey: Secret expected in the X-Admin-Key header (required)
  - TokenTTL: Session lifetime (default: 1h)
  - RateRPS, RateBurst: Per-IP limits on login, register and vote (default: 5, 10)
  - TrustProxy: Key rate limits on X-Forwarded-For instead of the peer address
    (default: false; enable only behind a reverse proxy)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--jwt-secret  Session signing secret
	--admin-key   Admin API key
	--token-ttl   Session lifetime
	--rate-rps    Requests per second per IP
	--rate-burst  Burst size per IP
	--trust-proxy Honour forwarding headers

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	JWT_SECRET    → --jwt-secret
	ADMIN_KEY     → --admin-key
	TOKEN_TTL     → --token-ttl
	RATE_RPS      → --rate-rps
	RATE_BURST    → --rate-burst
	TRUST_PROXY   → --trust-proxy

CLI flags take precedence over environment variables.
*/
package cliparse
