// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/statevote/db"
	"github.com/danielhkuo/statevote/models"
)

// CastResult confirms a recorded vote.
type CastResult struct {
	CandidateName string
	Message       string
}

// checkVoteAllowed runs the pre-write checks in order and returns the
// election on success. The first failing check decides the error.
func checkVoteAllowed(ctx context.Context, q querier, userID, slug string, now time.Time) (models.Election, error) {
	election, err := electionBySlug(ctx, q, slug)
	if err != nil {
		return models.Election{}, err
	}

	profile, err := loadProfile(ctx, q, userID)
	if err != nil {
		return models.Election{}, err
	}

	if !profile.IsVerified {
		return models.Election{}, ErrNotVerified
	}
	if !election.IsOpen(now) {
		return models.Election{}, ErrNotActive
	}
	if !election.Admits(profile) {
		return models.Election{}, ErrNotEligible
	}

	voted, err := hasVoted(ctx, q, userID, election.ID)
	if err != nil {
		return models.Election{}, err
	}
	if voted {
		return models.Election{}, ErrAlreadyVoted
	}

	return election, nil
}

// resolveCandidate finds candidateID within electionID. An id that is
// empty, malformed, unknown, or belongs to another election is an
// invalid selection.
func resolveCandidate(ctx context.Context, q querier, electionID, candidateID string) (models.Candidate, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return models.Candidate{}, fmt.Errorf("no candidate selected: %w", ErrInvalidSelection)
	}
	parsed, err := uuid.Parse(candidateID)
	if err != nil {
		return models.Candidate{}, fmt.Errorf("malformed candidate id %q: %w", candidateID, ErrInvalidSelection)
	}

	var c models.Candidate
	err = q.QueryRowContext(ctx, `
		SELECT id, election_id, name, position
		FROM candidate
		WHERE id = $1 AND election_id = $2
	`, parsed.String(), electionID).Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, fmt.Errorf("candidate %s not in election %s: %w", parsed, electionID, ErrInvalidSelection)
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to load candidate: %w", err)
	}
	return c, nil
}

// PrepareBallot checks that userID may vote in the election named by slug
// and returns it with its candidates. Nothing is written.
func (e *Engine) PrepareBallot(ctx context.Context, userID, slug string, now time.Time) (models.Ballot, error) {
	election, err := checkVoteAllowed(ctx, e.db, userID, slug, now)
	if err != nil {
		return models.Ballot{}, err
	}

	candidates, err := candidatesFor(ctx, e.db, election.ID)
	if err != nil {
		return models.Ballot{}, err
	}

	return models.Ballot{Election: election, Candidates: candidates}, nil
}

// CastVote records one anonymous vote for candidateID and one voter record
// for userID, in a single transaction. A concurrent cast for the same
// (user, election) that slips past the pre-check is rejected by the
// voter_record primary key and reported as ErrAlreadyVoted.
func (e *Engine) CastVote(ctx context.Context, userID, slug, candidateID string, now time.Time) (CastResult, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return CastResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	election, err := checkVoteAllowed(ctx, tx, userID, slug, now)
	if err != nil {
		return CastResult{}, err
	}

	candidate, err := resolveCandidate(ctx, tx, election.ID, candidateID)
	if err != nil {
		return CastResult{}, err
	}

	// voter_record first: if the constraint fires, no vote row was written.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO voter_record (user_id, election_id)
		VALUES ($1, $2)
	`, userID, election.ID)
	if err != nil {
		return CastResult{}, castWriteError("insert voter record", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (id, candidate_id, election_id)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), candidate.ID, election.ID)
	if err != nil {
		return CastResult{}, castWriteError("insert vote", err)
	}

	if err := tx.Commit(); err != nil {
		return CastResult{}, castWriteError("commit vote", err)
	}

	slog.Info("vote cast", "election", election.Slug, "user_id", userID)

	return CastResult{
		CandidateName: candidate.Name,
		Message:       fmt.Sprintf("Your vote for %s has been cast!", candidate.Name),
	}, nil
}

func castWriteError(step string, err error) error {
	if db.IsUniqueViolation(err) {
		slog.Warn("concurrent vote rejected by constraint", "step", step)
		return fmt.Errorf("%w: %w", ErrAlreadyVoted, ErrStorageConflict)
	}
	return fmt.Errorf("failed to %s: %w", step, err)
}
