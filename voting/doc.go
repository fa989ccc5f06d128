// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting decides who may vote where, records votes exactly once, and
tallies closed elections.

# Engine

An Engine wraps the database handle. Every operation receives the acting
user and the current time as arguments:

	engine := voting.NewEngine(db)
	eligible, err := engine.ComputeEligibility(ctx, userID, time.Now())
	result, err := engine.CastVote(ctx, userID, "city-council-2025", candidateID, time.Now())
	results, err := engine.ComputeResults(ctx, time.Now())
	pct := engine.ComputeTurnout(ctx)

# Eligibility

A user may vote in an election when the profile is verified, the current
time is within [start_time, end_time], and the election is NATIONAL or a
STATE election for the profile's state. The user's voter records are
loaded once and checked by set membership for the has-voted flag.

# Casting

CastVote runs its checks inside one transaction, in this order:

 1. the election exists (ErrNotFound)
 2. the profile is verified (ErrNotVerified)
 3. the election is open (ErrNotActive)
 4. the jurisdiction matches (ErrNotEligible)
 5. no voter record exists yet (ErrAlreadyVoted)
 6. the candidate belongs to this election (ErrInvalidSelection)

It then writes one voter_record and one vote. The vote row has no user
column; the voter_record has no candidate. If a concurrent cast for the
same user commits first, the voter_record primary key rejects the second
one and CastVote returns ErrAlreadyVoted wrapping ErrStorageConflict.

# Results

Elections that have not reached end_time are reported as active without
any counts. Closed elections are ranked by vote count, with equal counts
kept in candidate position order. Winner is the first candidate to reach
the top count in position order; when the top count is shared,
TiedWinners lists every candidate holding it.

# Turnout

ComputeTurnout is voter records / (verified users × elections) × 100. It
never returns an error: failures are logged and reported as 0.

# Errors

Expected rejections are *Error values with a stable Code and a
voter-facing Message:

	switch voting.Reason(err) {
	case voting.CodeAlreadyVoted:
		// ...
	}

Anything else is an internal failure and should be treated as such.
*/
package voting
