// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to the subset PostgreSQL and SQLite share.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS user_profile (
    user_id TEXT PRIMARY KEY REFERENCES app_user(id) ON DELETE CASCADE,
    age INTEGER NOT NULL CHECK (age >= 0),
    state TEXT NOT NULL,
    is_verified BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_user_profile_verified ON user_profile(is_verified);

-- Elections
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    election_type TEXT NOT NULL CHECK (election_type IN ('NATIONAL', 'STATE')),
    state TEXT,
    start_time TIMESTAMP NOT NULL,
    end_time TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL,
    CHECK (election_type = 'NATIONAL' OR state IS NOT NULL)
);

CREATE INDEX IF NOT EXISTS idx_election_type_state ON election(election_type, state);

-- Candidates, ordered by position within their election
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    UNIQUE (election_id, position),
    UNIQUE (id, election_id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_election_id ON candidate(election_id);

-- Votes. No voter reference and no timestamp: a vote must not be
-- linkable to the voter_record written alongside it.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    candidate_id TEXT NOT NULL,
    election_id TEXT NOT NULL,
    FOREIGN KEY (candidate_id, election_id) REFERENCES candidate(id, election_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_vote_election_candidate ON vote(election_id, candidate_id);

-- Participation. The primary key is the double-vote guard. Like vote,
-- no timestamp, so the two tables cannot be joined on time.
CREATE TABLE IF NOT EXISTS voter_record (
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, election_id)
);

CREATE INDEX IF NOT EXISTS idx_voter_record_election_id ON voter_record(election_id);
`
