// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/statevote/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the same reads
// serve display paths and the cast transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const electionColumns = `id, slug, title, election_type, state, start_time, end_time, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanElection(row rowScanner) (models.Election, error) {
	var e models.Election
	var state sql.NullString
	err := row.Scan(&e.ID, &e.Slug, &e.Title, &e.ElectionType, &state,
		&e.StartTime, &e.EndTime, &e.CreatedAt)
	if err != nil {
		return models.Election{}, err
	}
	if state.Valid && e.ElectionType == models.ElectionState {
		s := state.String
		e.State = &s
	}
	e.StartTime = e.StartTime.UTC()
	e.EndTime = e.EndTime.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

func loadProfile(ctx context.Context, q querier, userID string) (models.UserProfile, error) {
	var p models.UserProfile
	err := q.QueryRowContext(ctx, `
		SELECT p.user_id, u.username, p.age, p.state, p.is_verified
		FROM user_profile p
		JOIN app_user u ON u.id = p.user_id
		WHERE p.user_id = $1
	`, userID).Scan(&p.UserID, &p.Username, &p.Age, &p.State, &p.IsVerified)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, fmt.Errorf("user %s: %w", userID, ErrUnknownUser)
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

func electionBySlug(ctx context.Context, q querier, slug string) (models.Election, error) {
	e, err := scanElection(q.QueryRowContext(ctx, `
		SELECT `+electionColumns+` FROM election WHERE slug = $1
	`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Election{}, fmt.Errorf("election %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to load election: %w", err)
	}
	return e, nil
}

func queryElections(ctx context.Context, q querier, query string, args ...any) ([]models.Election, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query elections: %w", err)
	}
	defer rows.Close()

	elections := []models.Election{}
	for rows.Next() {
		e, err := scanElection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read elections: %w", err)
	}
	return elections, nil
}

// electionsInJurisdiction returns NATIONAL elections plus STATE elections
// for state. Time filtering is left to the caller.
func electionsInJurisdiction(ctx context.Context, q querier, state string) ([]models.Election, error) {
	return queryElections(ctx, q, `
		SELECT `+electionColumns+`
		FROM election
		WHERE election_type = $1 OR (election_type = $2 AND state = $3)
		ORDER BY start_time, slug
	`, models.ElectionNational, models.ElectionState, state)
}

func allElections(ctx context.Context, q querier) ([]models.Election, error) {
	return queryElections(ctx, q, `
		SELECT `+electionColumns+`
		FROM election
		ORDER BY end_time, slug
	`)
}

// votedElectionIDs loads every election the user has a voter_record for,
// in one query.
func votedElectionIDs(ctx context.Context, q querier, userID string) (map[string]struct{}, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT election_id FROM voter_record WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query voter records: %w", err)
	}
	defer rows.Close()

	voted := make(map[string]struct{})
	for rows.Next() {
		var electionID string
		if err := rows.Scan(&electionID); err != nil {
			return nil, fmt.Errorf("failed to scan voter record: %w", err)
		}
		voted[electionID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voter records: %w", err)
	}
	return voted, nil
}

func hasVoted(ctx context.Context, q querier, userID, electionID string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM voter_record
			WHERE user_id = $1 AND election_id = $2
		)
	`, userID, electionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check voter record: %w", err)
	}
	return exists, nil
}

func candidatesFor(ctx context.Context, q querier, electionID string) ([]models.Candidate, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, election_id, name, position
		FROM candidate
		WHERE election_id = $1
		ORDER BY position
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

// candidateCounts returns every candidate of the election with its vote
// count, in position order. Candidates without votes count zero.
func candidateCounts(ctx context.Context, q querier, electionID string) ([]candidateCount, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.id, c.election_id, c.name, c.position, COUNT(v.id)
		FROM candidate c
		LEFT JOIN vote v ON v.candidate_id = c.id AND v.election_id = c.election_id
		WHERE c.election_id = $1
		GROUP BY c.id, c.election_id, c.name, c.position
		ORDER BY c.position
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := []candidateCount{}
	for rows.Next() {
		var cc candidateCount
		c := &cc.candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position, &cc.votes); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts = append(counts, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote counts: %w", err)
	}
	return counts, nil
}
