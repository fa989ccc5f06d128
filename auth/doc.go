// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, session tokens and admin key checks.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

Passwords shorter than MinPasswordLength are rejected.

# Session Tokens

Sessions are HS256 JWTs whose subject is the user ID:

	token, expiresAt, err := auth.IssueToken(userID, secret, ttl, time.Now())
	userID, err := auth.ParseToken(token, secret)

ParseToken refuses non-HMAC algorithms, expired tokens, a foreign issuer
and tokens without a subject.

# Admin Keys

Admin endpoints compare the X-Admin-Key header with the configured key:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

# ID Generation

Random UUIDv4 IDs for database records:

	id := auth.NewID()
*/
package auth
