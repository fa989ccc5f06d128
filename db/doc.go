// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation and driver error mapping.

# Connecting

Open picks the driver from the configured database type and pings it:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL goes through lib/pq. SQLite goes through modernc.org/sqlite with
foreign keys enabled and a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: Login identity (username, email, bcrypt hash)
  - user_profile: Age, state and verification flag, 1:1 with app_user
  - election: Slug, type (NATIONAL or STATE), state, voting window
  - candidate: Named choice, ordered by position within its election
  - vote: Anonymous tally row (candidate, election), no user column
  - voter_record: Who voted where, unique per (user, election)

# Relationships

	app_user 1──1 user_profile
	election 1──* candidate
	election 1──* vote
	election 1──* voter_record
	app_user 1──* voter_record

vote references candidate through (candidate_id, election_id), so a vote
can only point at a candidate of its own election.

# Constraint Errors

IsUniqueViolation recognizes unique and primary key failures from both
drivers:

	if db.IsUniqueViolation(err) {
		// the row already exists
	}
*/
package db
